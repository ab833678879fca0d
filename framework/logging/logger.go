// Package logging provides a thin wrapper around zerolog.Logger used
// throughout the framework.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error, Fatal, ...) is available directly.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a Logger for the application.
//
// In the "local" environment output is a human-readable console stream at
// debug level; everywhere else it is JSON on stdout at info level. Every
// entry carries an "app" field and a timestamp.
func New(appName, environment string) *Logger {
	level := zerolog.InfoLevel
	if environment == "local" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stdout).Level(level).With().
		Str("app", appName).
		Timestamp().
		Logger()

	if environment == "local" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return &Logger{logger}
}
