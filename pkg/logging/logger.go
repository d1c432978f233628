// Package logging provides structured logging for vodmap using zerolog.
// Console output is used on a terminal and JSON everywhere else.
//
// Pipeline stages take their logger from the context, so every line of a
// discovery run carries the run id and stage:
//
//	ctx = logging.WithRunID(ctx, runID)
//	ctx = logging.WithStage(ctx, "probe")
//	logging.FromContext(ctx).Info().Str("url", u).Msg("Endpoint is live")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is used when a context carries no logger. The CLI replaces
// it once flags are parsed.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(envConfig())
}

// envConfig returns the settings available before any flag is parsed:
// LOG_LEVEL (or DEBUG) and LOG_FORMAT.
func envConfig() *Config {
	cfg := DefaultConfig()
	switch {
	case os.Getenv("LOG_LEVEL") != "":
		cfg.Level = os.Getenv("LOG_LEVEL")
	case os.Getenv("DEBUG") != "":
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
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

// Debug starts a debug event on the default logger, for code with no
// context at hand.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
