package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// InitLogging configures the global logger. With an empty path logs go to a
// console writer on stderr; otherwise they are appended as JSON to filePath.
func InitLogging(filePath string) {
	if filePath == "" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		return
	}

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Error().Err(err).Str("path", filePath).Msg("failed to open log file, keeping stderr")
		return
	}
	log = zerolog.New(f).With().Timestamp().Logger()
}

// SetLevel adjusts the global minimum level, e.g. "debug" during development.
func SetLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// DebugLog logs a formatted debug message.
func DebugLog(ctx context.Context, format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

// InfoLog logs a formatted info message.
func InfoLog(ctx context.Context, format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

// ErrorLog logs a formatted error message.
func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}
