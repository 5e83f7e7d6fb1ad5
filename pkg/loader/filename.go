package loader

import (
	"regexp"
	"strings"
)

// filenamePattern matches the export naming scheme
// "<task> - Challenge - YYYY.MM.DD-HH.MM.SS Stats.csv".
var filenamePattern = regexp.MustCompile(`^(.*?)\s*-\s*Challenge\s*-\s*(\d{4}\.\d{2}\.\d{2}-\d{2}\.\d{2}\.\d{2})\s*Stats\.csv`)

// TaskIdentity identifies one session: the scenario name and the export
// timestamp. The timestamp keeps its original YYYY.MM.DD-HH.MM.SS text
// form so it round-trips exactly and carries no timezone ambiguity.
type TaskIdentity struct {
	Task      string
	Timestamp string
}

// ParseFilename extracts a TaskIdentity from an export filename.
// The .csv suffix check is case-sensitive. Filenames that don't match
// the pattern are simply not candidates, so the bool is false rather
// than an error.
func ParseFilename(name string) (TaskIdentity, bool) {
	if !strings.HasSuffix(name, ".csv") {
		return TaskIdentity{}, false
	}

	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return TaskIdentity{}, false
	}

	return TaskIdentity{
		Task:      strings.TrimSpace(m[1]),
		Timestamp: m[2],
	}, true
}
