package cmd

import (
	"context"
	"log/slog"

	"github.com/devtools/npm-registry/internal/config"
	"github.com/devtools/npm-registry/internal/logging"
	"github.com/spf13/cobra"
)

// loadSettings reads the settings file named by --config, falling back to
// ~/.config/npm-registry.toml, and validates it.
func loadSettings() (*config.Config, error) {
	path := configPath
	if path == "" {
		home, err := homeDir()
		if err != nil || home == "" {
			return config.Default(), nil
		}
		path = config.DefaultPath(home)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr(), verbose)
}

// commandContext returns the command's context, or Background when the
// command was invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
