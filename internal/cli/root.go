// Package cli provides the command-line interface for the KovaaK's data
// companion.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kdac",
		Short: "Parse and aggregate KovaaK's stats exports",
		Long: `kdac is the KovaaK's Data Analysis Companion.

It parses KovaaK's aim-trainer CSV exports, which mix three sections in
one file (a kill/event table, a weapon table, and a key-value stats
block), and aggregates a whole stats directory into a per-task,
per-session index.

Point it at your KovaaK's stats directory and query what you've played.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewLoadCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
