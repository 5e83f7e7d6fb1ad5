// Package config provides configuration loading and validation for the
// KovaaK's data companion CLI.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// StatsDir is the directory containing KovaaK's CSV exports.
	StatsDir string `yaml:"stats_dir"`

	// ProgressEvery is how many processed files pass between progress
	// lines. 0 disables per-file progress output.
	ProgressEvery int `yaml:"progress_every,omitempty"`

	// Output selects the summary format (text or json).
	Output string `yaml:"output,omitempty"`
}
