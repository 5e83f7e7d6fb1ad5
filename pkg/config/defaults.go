package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultStatsDir      = "./stats"
	DefaultProgressEvery = 10
	DefaultOutput        = "text"
)

// Environment variable names.
const (
	EnvStatsDir      = "KDAC_STATS_DIR"
	EnvProgressEvery = "KDAC_PROGRESS_EVERY"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		StatsDir:      DefaultStatsDir,
		ProgressEvery: DefaultProgressEvery,
		Output:        DefaultOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvStatsDir); dir != "" {
		c.StatsDir = dir
	}
	if every := os.Getenv(EnvProgressEvery); every != "" {
		if n, err := strconv.Atoi(every); err == nil && n >= 0 {
			c.ProgressEvery = n
		}
	}
}
