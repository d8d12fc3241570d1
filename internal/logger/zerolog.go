package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var _ Logger = (*ZerologAdapter)(nil)

type ZerologAdapter struct {
	logger zerolog.Logger
}

// New writes zerolog JSON lines to writer.
func New(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

func NewConsole(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return New(consoleWriter, level)
}

// NewFromConfig picks JSON or console output for the given level name.
func NewFromConfig(levelName string, useJSON bool) (*ZerologAdapter, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	if useJSON {
		return New(os.Stderr, level), nil
	}
	return NewConsole(level), nil
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.write(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	z.write(z.logger.Error().Err(err), component, fields).Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.write(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.write(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) write(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}
