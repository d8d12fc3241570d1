package config

// Config holds all application configuration.
type Config struct {
	Deck   DeckConfig   `mapstructure:"deck" validate:"required"`
	Window WindowConfig `mapstructure:"window" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
}

// DeckConfig controls where cards come from and how the first session is ordered.
type DeckConfig struct {
	Path    string `mapstructure:"path" validate:"required"`
	Shuffle bool   `mapstructure:"shuffle"`
}

type WindowConfig struct {
	Title      string  `mapstructure:"title" validate:"required"`
	Fullscreen bool    `mapstructure:"fullscreen"`
	Width      float32 `mapstructure:"width" validate:"gt=0"`
	Height     float32 `mapstructure:"height" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn warning error"`
	JSON  bool   `mapstructure:"json"`
}
