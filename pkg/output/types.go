// Package output provides formatting and output generation for
// aggregation results.
package output

import (
	"time"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/loader"
)

// Report is the complete load summary.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Tasks lists per-task session counts, sorted by task name.
	Tasks []TaskSummary `json:"tasks"`

	// Metadata provides context about the load.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// FilesProcessed is the number of files parsed and indexed.
	FilesProcessed int `json:"files_processed"`

	// FilesFailed is the number of files skipped due to read failures.
	FilesFailed int `json:"files_failed"`

	// UniqueTasks is the number of distinct task names observed.
	UniqueTasks int `json:"unique_tasks"`
}

// TaskSummary describes the sessions recorded for one task.
type TaskSummary struct {
	Task     string `json:"task"`
	Sessions int    `json:"sessions"`
	First    string `json:"first,omitempty"`
	Last     string `json:"last,omitempty"`
}

// Metadata provides context about the load run.
type Metadata struct {
	// StatsDir is the directory that was aggregated.
	StatsDir string `json:"stats_dir"`

	// LoadedAt is when the load finished.
	LoadedAt time.Time `json:"loaded_at"`

	// Duration is how long the load took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from an aggregation result.
func NewReport(res *loader.Result, statsDir string, duration time.Duration) *Report {
	report := &Report{
		Summary: Summary{
			FilesProcessed: res.FilesProcessed,
			FilesFailed:    res.FilesFailed,
			UniqueTasks:    res.TaskCount(),
		},
		Metadata: Metadata{
			StatsDir: statsDir,
			LoadedAt: time.Now(),
			Duration: duration,
		},
	}

	for _, task := range res.Tasks() {
		sessions := res.Sessions(task)
		ts := TaskSummary{Task: task, Sessions: len(sessions)}
		if len(sessions) > 0 {
			ts.First = sessions[0]
			ts.Last = sessions[len(sessions)-1]
		}
		report.Tasks = append(report.Tasks, ts)
	}

	return report
}

// Empty returns true if no files were aggregated.
func (r *Report) Empty() bool {
	return r.Summary.FilesProcessed == 0
}
