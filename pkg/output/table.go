package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/kovaaks"
)

// RenderTable writes a parsed table to w. A column-only table renders
// its header with no data rows; a fully empty table renders a note
// instead.
func RenderTable(w io.Writer, tbl kovaaks.Table) {
	if tbl.Empty() {
		fmt.Fprintln(w, "(empty)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(tbl.Columns))
	for i, col := range tbl.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range tbl.Rows {
		cells := make(table.Row, len(tbl.Columns))
		for i, col := range tbl.Columns {
			cells[i] = row[col]
		}
		t.AppendRow(cells)
	}

	t.Render()
}

// RenderStats writes the stats block to w in insertion order, with the
// inferred type of each value.
func RenderStats(w io.Writer, stats *kovaaks.Stats) {
	if stats == nil || stats.Len() == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Stat", "Value", "Type"})

	for _, key := range stats.Keys() {
		v, _ := stats.Get(key)
		t.AppendRow(table.Row{key, v.String(), v.Kind().String()})
	}

	t.Render()
}
