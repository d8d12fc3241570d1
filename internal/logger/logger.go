package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides component-tagged structured logging
type Logger interface {
	Debug(component string, message string, fields map[string]interface{})
	Info(component string, message string, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a configuration level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// NoOp discards everything
type NoOp struct{}

func (NoOp) Debug(component string, message string, fields map[string]interface{})   {}
func (NoOp) Info(component string, message string, fields map[string]interface{})    {}
func (NoOp) Warning(component string, message string, fields map[string]interface{}) {}
func (NoOp) Error(component string, err error, fields map[string]interface{})        {}
