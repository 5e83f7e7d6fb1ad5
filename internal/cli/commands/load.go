package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/config"
	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/loader"
	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/output"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// LoadOptions holds command-line options for the load command.
type LoadOptions struct {
	Config        string
	Output        string
	ProgressEvery int
	Verbose       bool
	Quiet         bool
}

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	opts := &LoadOptions{}

	cmd := &cobra.Command{
		Use:   "load [stats-dir]",
		Short: "Aggregate a directory of KovaaK's CSV exports",
		Long: `Aggregate every KovaaK's stats export in a directory.

Filenames must match "<task> - Challenge - YYYY.MM.DD-HH.MM.SS Stats.csv";
anything else is skipped. Files that cannot be read are logged and skipped
without aborting the batch.

Exit codes:
  0 - Files aggregated
  1 - No matching files found
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.ProgressEvery, "progress-every", -1, "Progress line every N files (0 disables)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include load metadata in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no progress output")

	return cmd
}

func runLoad(cmd *cobra.Command, args []string, opts *LoadOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, args, opts)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	progress := io.Writer(os.Stdout)
	if opts.Quiet {
		progress = io.Discard
	}

	l := loader.New(
		loader.WithProgressInterval(cfg.ProgressEvery),
		loader.WithLogger(logger),
		loader.WithProgressWriter(progress),
	)

	start := time.Now()
	res, err := l.LoadDir(ctx, cfg.StatsDir)
	if err != nil {
		return fmt.Errorf("loading stats: %w", err)
	}

	report := output.NewReport(res, cfg.StatsDir, time.Since(start))

	formatter, err := createFormatter(cfg.Output, opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Set exit code based on results
	if report.Empty() {
		ExitCode = 1
	}

	return nil
}

// resolveConfig merges the config file, flags, and the positional stats
// directory. Flags win over the file; the positional argument wins over
// both for the directory.
func resolveConfig(ctx context.Context, args []string, opts *LoadOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.Config != "" {
		loaded, err := config.Load(ctx, opts.Config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.StatsDir = args[0]
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.ProgressEvery >= 0 {
		cfg.ProgressEvery = opts.ProgressEvery
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func createFormatter(format string, opts *LoadOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
