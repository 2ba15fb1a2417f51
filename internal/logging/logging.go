// Package logging provides structured logging infrastructure for npm-registry.
package logging

import (
	"io"
	"log/slog"

	"github.com/devtools/npm-registry/internal/config"
)

// NewFromConfig creates a new slog.Logger based on configuration.
// When verbose is set the level is forced to debug.
func NewFromConfig(cfg *config.Config, w io.Writer, verbose bool) *slog.Logger {
	level := parseLevel(cfg.Logging.Level)
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(newHandler(cfg.Logging.Format, w, level))
}

// NewForTest creates a silent logger for tests.
func NewForTest() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// parseLevel converts config log level to slog.Level.
func parseLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newHandler creates a slog.Handler based on format.
func newHandler(format config.LogFormat, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	switch format {
	case config.LogFormatJSON:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// WithProfile returns a logger with profile context.
func WithProfile(logger *slog.Logger, profile string) *slog.Logger {
	return logger.With("profile", profile)
}
