// Package logging provides structured logging for sheave using zerolog.
// Diagnostics (debug traces, recovered errors, conflicts) go through this
// package; user-facing progress lines go through the guidance Reporter.
//
// Example usage:
//
//	log := logging.Default()
//	log.Debug().Str("target", ".cursor/rules").Msg("Reconciling")
//
//	ctx := logging.WithLogger(context.Background(), log)
//	logging.FromContext(ctx).Warn().Msg("Override shadows base rule")
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = createDefaultLogger()
}

// createDefaultLogger creates a logger with default settings.
func createDefaultLogger() zerolog.Logger {
	var writer io.Writer = os.Stderr

	if isatty.IsTerminal(os.Stderr.Fd()) && EnvOrDefault("LOG_FORMAT", "") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := parseLevel(EnvOrDefault("LOG_LEVEL", "info"))

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}
