package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.StatsDir == "" {
		return errors.New("stats_dir: a stats directory is required")
	}

	if cfg.ProgressEvery < 0 {
		return fmt.Errorf("progress_every: must be >= 0, got %d", cfg.ProgressEvery)
	}

	switch cfg.Output {
	case "text", "json":
	default:
		return fmt.Errorf("output: invalid format %q (use text or json)", cfg.Output)
	}

	return nil
}
