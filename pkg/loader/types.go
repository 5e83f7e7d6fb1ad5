// Package loader aggregates a directory of KovaaK's CSV exports into
// nested per-task, per-session indexes.
package loader

import (
	"sort"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/kovaaks"
)

// EventIndex holds event tables keyed by task name, then timestamp.
type EventIndex map[string]map[string]kovaaks.Table

// WeaponIndex holds weapon tables keyed by task name, then timestamp.
type WeaponIndex map[string]map[string]kovaaks.Table

// StatsIndex holds stats maps keyed by task name, then timestamp.
type StatsIndex map[string]map[string]*kovaaks.Stats

// Result is the outcome of aggregating one stats directory: three
// parallel two-level indexes plus processing counts.
type Result struct {
	Events  EventIndex
	Weapons WeaponIndex
	Stats   StatsIndex

	// FilesProcessed counts files parsed and inserted.
	FilesProcessed int

	// FilesFailed counts files skipped because reading them failed.
	FilesFailed int
}

// NewResult returns a Result with empty indexes.
func NewResult() *Result {
	return &Result{
		Events:  make(EventIndex),
		Weapons: make(WeaponIndex),
		Stats:   make(StatsIndex),
	}
}

// insert stores one parsed record under its identity. Inner maps are
// constructed explicitly on first use.
func (r *Result) insert(id TaskIdentity, rec *kovaaks.Record) {
	if _, ok := r.Events[id.Task]; !ok {
		r.Events[id.Task] = make(map[string]kovaaks.Table)
		r.Weapons[id.Task] = make(map[string]kovaaks.Table)
		r.Stats[id.Task] = make(map[string]*kovaaks.Stats)
	}
	r.Events[id.Task][id.Timestamp] = rec.Events
	r.Weapons[id.Task][id.Timestamp] = rec.Weapons
	r.Stats[id.Task][id.Timestamp] = rec.Stats
}

// Tasks returns the distinct task names, sorted.
func (r *Result) Tasks() []string {
	tasks := make([]string, 0, len(r.Events))
	for task := range r.Events {
		tasks = append(tasks, task)
	}
	sort.Strings(tasks)
	return tasks
}

// TaskCount returns the number of distinct task names observed.
func (r *Result) TaskCount() int {
	return len(r.Events)
}

// Sessions returns the timestamps recorded for a task, sorted. The
// textual timestamp format sorts chronologically.
func (r *Result) Sessions(task string) []string {
	inner, ok := r.Events[task]
	if !ok {
		return nil
	}
	sessions := make([]string, 0, len(inner))
	for ts := range inner {
		sessions = append(sessions, ts)
	}
	sort.Strings(sessions)
	return sessions
}
