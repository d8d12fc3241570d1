package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix       = "FLASHCARDS"
	DefaultDeckPath = "acronyms.txt"
	DefaultTitle    = "Acronym Flashcards"
)

var flagKeys = map[string]string{
	"deck":       "deck.path",
	"shuffle":    "deck.shuffle",
	"fullscreen": "window.fullscreen",
	"log-level":  "log.level",
	"log-json":   "log.json",
}

// Load parses args (without the program name) and resolves the configuration.
// -h/--help returns pflag.ErrHelp.
func Load(args []string) (*Config, error) {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	// A missing .env file is normal.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	configFile, _ := flags.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("error binding flag --%s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("acronym-flashcards", pflag.ContinueOnError)
	flags.String("deck", DefaultDeckPath, "path to the acronym list")
	flags.Bool("shuffle", true, "shuffle the first session")
	flags.Bool("fullscreen", true, "open the window fullscreen")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("log-json", false, "write JSON log lines instead of console output")
	flags.String("config", "", "optional YAML config file")
	return flags
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deck.path", DefaultDeckPath)
	v.SetDefault("deck.shuffle", true)
	v.SetDefault("window.title", DefaultTitle)
	v.SetDefault("window.fullscreen", true)
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}
