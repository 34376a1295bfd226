package app

import (
	"context"
	"fmt"

	"github.com/vk/rostergo/internal/config"
)

// Config holds the command-line level configuration for an App. Empty
// fields fall back to the settings file, then to config.Default.
type Config struct {
	ConfigPath string // hcl settings file, optional
	EnvFile    string // dotenv file used for ${env.NAME} in the settings file
	DataFile   string // roster loaded at startup, optional

	LogFile   string
	LogLevel  string
	LogFormat string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if err := validateLogFormat(cfg.LogFormat); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveSettings layers defaults, the settings file and cfg, in that order.
func resolveSettings(ctx context.Context, cfg *Config, loader config.Loader) (*config.Settings, error) {
	settings := config.Default()

	if cfg.ConfigPath != "" {
		fileSettings, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings.Merge(fileSettings)
	}

	settings.Merge(&config.Settings{
		DataFile: cfg.DataFile,
		Log: config.Log{
			File:   cfg.LogFile,
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		},
	})

	if err := validateLogLevel(settings.Log.Level); err != nil {
		return nil, err
	}
	if err := validateLogFormat(settings.Log.Format); err != nil {
		return nil, err
	}
	return settings, nil
}

func validateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", level)
}

func validateLogFormat(format string) error {
	switch format {
	case "", "text", "json":
		return nil
	}
	return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", format)
}
