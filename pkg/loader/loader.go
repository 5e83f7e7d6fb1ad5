package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/kovaaks"
)

// DefaultProgressInterval is how many successfully processed files pass
// between progress lines.
const DefaultProgressInterval = 10

// Loader aggregates a directory of exports. Files are processed strictly
// sequentially in directory-listing order (which is not assumed sorted);
// each file is fully read and released before parsing begins.
type Loader struct {
	progressEvery int
	logger        *slog.Logger
	progress      io.Writer
}

// Option configures a Loader.
type Option func(*Loader)

// WithProgressInterval sets how often progress lines are emitted.
// An interval of 0 disables per-file progress output.
func WithProgressInterval(n int) Option {
	return func(l *Loader) {
		if n >= 0 {
			l.progressEvery = n
		}
	}
}

// WithLogger sets the logger used for per-file failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithProgressWriter sets the destination for progress and summary
// lines. Use io.Discard for quiet operation.
func WithProgressWriter(w io.Writer) Option {
	return func(l *Loader) {
		if w != nil {
			l.progress = w
		}
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		progressEvery: DefaultProgressInterval,
		logger:        slog.Default(),
		progress:      os.Stdout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadDir aggregates every matching export in dir. The returned error is
// only for the directory listing itself: filenames that don't match the
// export pattern are skipped silently, and a file whose read fails is
// logged and skipped without aborting the batch.
func (l *Loader) LoadDir(ctx context.Context, dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading stats directory %s: %w", dir, err)
	}

	res := NewResult()

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if entry.IsDir() {
			continue
		}

		id, ok := ParseFilename(entry.Name())
		if !ok {
			continue
		}

		rec, err := kovaaks.ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			l.logger.Error("processing file failed",
				slog.String("file", entry.Name()),
				slog.String("error", err.Error()))
			res.FilesFailed++
			continue
		}

		res.insert(id, rec)
		res.FilesProcessed++

		if l.progressEvery > 0 && res.FilesProcessed%l.progressEvery == 0 {
			fmt.Fprintf(l.progress, "Processed %d files...\n", res.FilesProcessed)
		}
	}

	fmt.Fprintf(l.progress, "\nTotal files processed: %d\n", res.FilesProcessed)
	fmt.Fprintf(l.progress, "Unique tasks: %d\n", res.TaskCount())

	return res, nil
}
