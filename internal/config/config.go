package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	rerrors "github.com/devtools/npm-registry/internal/errors"
)

// SettingsFileName is the settings file looked up under ~/.config.
const SettingsFileName = "npm-registry.toml"

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// NpmConfig holds settings for the package manager executable.
type NpmConfig struct {
	// Command is the executable invoked for `config set/get registry`.
	// Looked up on PATH when it has no path separator.
	Command string `toml:"command"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
}

// Config holds the tool settings. The home registry and the work registry
// file are fixed and deliberately not part of it.
type Config struct {
	Npm     NpmConfig     `toml:"npm"`
	Logging LoggingConfig `toml:"logging"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Npm: NpmConfig{
			Command: "npm",
		},
		Logging: LoggingConfig{
			Level:  LogLevelWarn,
			Format: LogFormatText,
		},
	}
}

// DefaultPath returns <home>/.config/npm-registry.toml.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", SettingsFileName)
}

// Load loads configuration from file, merging with defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, rerrors.ConfigParse(path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Npm.Command == "" {
		return rerrors.ConfigInvalidValue("npm.command", c.Npm.Command, "must not be empty")
	}
	switch c.Logging.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return rerrors.ConfigInvalidValue("logging.level", c.Logging.Level, "must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return rerrors.ConfigInvalidValue("logging.format", c.Logging.Format, "must be json or text")
	}
	return nil
}
