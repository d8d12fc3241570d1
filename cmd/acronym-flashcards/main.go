package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/prasad1624/acronym-flashcard-generator/internal/app"
	"github.com/prasad1624/acronym-flashcard-generator/internal/config"
	"github.com/prasad1624/acronym-flashcard-generator/internal/logger"
)

// Exit codes
const (
	exitOK      = 0
	exitStartup = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "acronym-flashcards: %v\n", err)
		return exitConfig
	}

	appLogger, err := logger.NewFromConfig(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "acronym-flashcards: %v\n", err)
		return exitConfig
	}

	appLogger.Info("Main", "application starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
		"deck":       cfg.Deck.Path,
		"log_level":  cfg.Log.Level,
	})

	if err := app.New(cfg, appLogger).Run(); err != nil {
		return exitStartup
	}

	appLogger.Info("Main", "application terminated", nil)
	return exitOK
}
