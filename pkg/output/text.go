package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "kdac: %d files processed, %d failed, %d tasks\n",
		report.Summary.FilesProcessed,
		report.Summary.FilesFailed,
		report.Summary.UniqueTasks)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== KovaaK's Load Report ===")
	fmt.Fprintln(w)

	for _, task := range report.Tasks {
		fmt.Fprintf(w, "%s: %d session(s)", task.Task, task.Sessions)
		if task.First != "" {
			if task.First == task.Last {
				fmt.Fprintf(w, " (%s)", task.First)
			} else {
				fmt.Fprintf(w, " (%s .. %s)", task.First, task.Last)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d files processed, %d failed, %d distinct tasks\n",
		report.Summary.FilesProcessed,
		report.Summary.FilesFailed,
		report.Summary.UniqueTasks)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Stats directory: %s\n", report.Metadata.StatsDir)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}
