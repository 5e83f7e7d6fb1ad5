package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/kovaaks"
	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/loader"
	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/output"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.csv>",
		Short: "Parse a single export and print its sections",
		Long: `Parse one KovaaK's CSV export and print the three sections it contains:
the kill/event table, the weapon table, and the key-value stats block.

Sections that are missing or malformed are shown as empty rather than
failing the parse.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	rec, err := kovaaks.ParseFile(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}

	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "File: %s\n", path)
	if id, ok := loader.ParseFilename(filepath.Base(path)); ok {
		fmt.Fprintf(w, "Task: %s\n", id.Task)
		fmt.Fprintf(w, "Session: %s\n", id.Timestamp)
	}

	fmt.Fprintf(w, "\nEvents (%d rows):\n", len(rec.Events.Rows))
	output.RenderTable(w, rec.Events)

	fmt.Fprintf(w, "\nWeapons (%d rows):\n", len(rec.Weapons.Rows))
	output.RenderTable(w, rec.Weapons)

	fmt.Fprintf(w, "\nStats (%d entries):\n", rec.Stats.Len())
	output.RenderStats(w, rec.Stats)

	return nil
}
