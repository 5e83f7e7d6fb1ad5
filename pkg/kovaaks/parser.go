package kovaaks

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Parse parses the content of one KovaaK's CSV export. It never fails:
// when a sub-section cannot be parsed it degrades to an empty container
// and the remaining sections are still parsed.
func Parse(data []byte) *Record {
	lines := splitLines(data)
	weaponStart, statsStart := findBoundaries(lines)

	rec := &Record{Stats: NewStats()}

	// Event table: everything before the weapon-table header. A weapon
	// header at line 0 means there is no event section at all.
	if weaponStart > 0 {
		rec.Events = parseSection(lines[:weaponStart])
	}

	// Weapon table: from its header up to the stats block. Rows where
	// every field is blank are dropped.
	if weaponStart >= 0 && statsStart >= 0 {
		tbl := parseSection(lines[weaponStart:statsStart])
		tbl.Rows = dropBlankRows(tbl.Rows)
		rec.Weapons = tbl
	}

	if statsStart >= 0 {
		parseStats(lines[statsStart:], rec.Stats)
	}

	return rec
}

// ParseFile reads path fully, closes it, then parses the content.
// The only possible error is an I/O error.
func ParseFile(path string) (*Record, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided stats files are expected
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data), nil
}

// parseSection parses lines as delimited tabular data with the first line
// as the header. Rows shorter than the header are padded with empty
// strings; fields beyond the header width are ignored. On a parse failure
// it retries with the header line alone so the column names are still
// exposed, and yields a fully empty table only when even that fails.
func parseSection(lines []string) Table {
	tbl, err := readTable(lines)
	if err == nil {
		return tbl
	}
	if len(lines) > 0 {
		if tbl, err = readTable(lines[:1]); err == nil {
			return tbl
		}
	}
	return Table{}
}

// readTable is the raw delimited parse underlying parseSection.
func readTable(lines []string) (Table, error) {
	if len(lines) == 0 {
		return Table{}, nil
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	r.FieldsPerRecord = -1 // rows may be ragged
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading section: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	tbl := Table{Columns: records[0]}
	for _, fields := range records[1:] {
		row := make(Row, len(tbl.Columns))
		for i, col := range tbl.Columns {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

// dropBlankRows removes rows whose fields are all blank.
func dropBlankRows(rows []Row) []Row {
	var kept []Row
	for _, row := range rows {
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				kept = append(kept, row)
				break
			}
		}
	}
	return kept
}
