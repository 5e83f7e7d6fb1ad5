package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/config"
	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/loader"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a kdac configuration file without loading any stats.

Checks:
  - YAML syntax
  - Required fields
  - Output format
  - Stats directory existence and export candidates (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Stats dir:      %s\n", cfg.StatsDir)
	fmt.Printf("  Progress every: %d\n", cfg.ProgressEvery)
	fmt.Printf("  Output:         %s\n", cfg.Output)

	// Check the stats directory (warnings only)
	entries, err := os.ReadDir(cfg.StatsDir)
	if err != nil {
		fmt.Printf("\nWarning: Cannot read stats directory: %v\n", err)
		return nil
	}

	candidates := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := loader.ParseFilename(entry.Name()); ok {
			candidates++
		}
	}

	if candidates == 0 {
		fmt.Printf("\nWarning: No export filenames match in %s\n", cfg.StatsDir)
	} else {
		fmt.Printf("\nExport candidates: %d\n", candidates)
	}

	return nil
}
