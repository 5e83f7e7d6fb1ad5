package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/internal/cli"
	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/kovaaks"
	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/loader"
	"github.com/aidansmith459/KovaaKs-Data-Analysis-Companion/pkg/output"
)

// export builds a realistic KovaaK's export with the given number of
// event rows and kill count.
func export(rows, kills int) string {
	var b strings.Builder
	b.WriteString("Kill #,Timestamp,Bot,Weapon,TTK,Shots,Hits,Accuracy\n")
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&b, "%d,10:30:0%d.123,bot%d,sns,0.500s,2,1,0.5\n", i, i%10, i)
	}
	b.WriteString("Weapon,Shots,Hits,Damage Done,Damage Possible\n")
	b.WriteString("sns,125,78,8190,13125\n")
	fmt.Fprintf(&b, "Kills:,%d\n", kills)
	b.WriteString("Deaths:,0\n")
	b.WriteString("Fight Time:,60.06\n")
	b.WriteString("Score:,786.7776\n")
	b.WriteString("Scenario:,1wall6targets TE\n")
	return b.String()
}

func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
}

// TestE2E_LoadAndReport runs the whole pipeline: fixture directory,
// aggregation, report building, and both output formats.
func TestE2E_LoadAndReport(t *testing.T) {
	dir := t.TempDir()
	writeExport(t, dir, "Close Range - Challenge - 2024.01.15-10.30.00 Stats.csv", export(3, 24))
	writeExport(t, dir, "Close Range - Challenge - 2024.01.16-11.00.00 Stats.csv", export(5, 31))
	writeExport(t, dir, "Tile Frenzy - Challenge - 2024.01.15-12.00.00 Stats.csv", export(0, 0))
	writeExport(t, dir, "random_notes.csv", "not,a,kovaaks\nexport,at,all\n")

	// A matching name whose read fails.
	broken := filepath.Join(dir, "Broken - Challenge - 2024.01.01-00.00.00 Stats.csv")
	if err := os.Symlink(filepath.Join(dir, "gone"), broken); err != nil {
		t.Fatal(err)
	}

	var logBuf, progressBuf bytes.Buffer
	l := loader.New(
		loader.WithProgressInterval(2),
		loader.WithLogger(slog.New(slog.NewTextHandler(&logBuf, nil))),
		loader.WithProgressWriter(&progressBuf),
	)

	start := time.Now()
	res, err := l.LoadDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	// 3 valid files in, 1 failure logged, batch not aborted.
	if res.FilesProcessed != 3 {
		t.Errorf("FilesProcessed = %d, want 3", res.FilesProcessed)
	}
	if res.FilesFailed != 1 {
		t.Errorf("FilesFailed = %d, want 1", res.FilesFailed)
	}
	if got := strings.Count(logBuf.String(), "processing file failed"); got != 1 {
		t.Errorf("error logs = %d, want 1", got)
	}
	if !strings.Contains(progressBuf.String(), "Processed 2 files...") {
		t.Errorf("progress output missing:\n%s", progressBuf.String())
	}

	// The zero-row export still exposes its event columns.
	tf := res.Events["Tile Frenzy"]["2024.01.15-12.00.00"]
	if len(tf.Rows) != 0 {
		t.Errorf("Tile Frenzy event rows = %d, want 0", len(tf.Rows))
	}
	if len(tf.Columns) == 0 || tf.Columns[0] != "Kill #" {
		t.Errorf("Tile Frenzy event columns = %v", tf.Columns)
	}

	stats := res.Stats["Close Range"]["2024.01.16-11.00.00"]
	kills, _ := stats.Get("Kills")
	if n, ok := kills.Int(); !ok || n != 31 {
		t.Errorf("Kills = %v, want int 31", kills)
	}

	report := output.NewReport(res, dir, time.Since(start))

	var textBuf bytes.Buffer
	if err := output.NewTextFormatter(output.FormatOptions{}).Format(context.Background(), report, &textBuf); err != nil {
		t.Fatalf("text format error = %v", err)
	}
	if !strings.Contains(textBuf.String(), "Close Range: 2 session(s)") {
		t.Errorf("text report:\n%s", textBuf.String())
	}

	var jsonBuf bytes.Buffer
	if err := output.NewJSONFormatter(output.FormatOptions{}).Format(context.Background(), report, &jsonBuf); err != nil {
		t.Fatalf("json format error = %v", err)
	}
	var decoded output.Report
	if err := json.Unmarshal(jsonBuf.Bytes(), &decoded); err != nil {
		t.Fatalf("json report invalid: %v", err)
	}
	if decoded.Summary.UniqueTasks != 2 {
		t.Errorf("unique_tasks = %d, want 2", decoded.Summary.UniqueTasks)
	}
}

// TestE2E_DegradedSections checks the parser against exports with
// missing sections.
func TestE2E_DegradedSections(t *testing.T) {
	// A stats-only file: no event or weapon section at all.
	statsOnly := "Kills:,5\nDeaths:,2\nAccuracy:,0.61\n"
	rec := kovaaks.Parse([]byte(statsOnly))
	if !rec.Events.Empty() || !rec.Weapons.Empty() {
		t.Error("stats-only file should have empty tables")
	}
	if rec.Stats.Len() != 3 {
		t.Errorf("stats entries = %d, want 3", rec.Stats.Len())
	}

	// Parsing twice yields structurally identical results.
	again := kovaaks.Parse([]byte(statsOnly))
	for _, key := range rec.Stats.Keys() {
		a, _ := rec.Stats.Get(key)
		b, _ := again.Stats.Get(key)
		if a != b {
			t.Errorf("stat %q differs across parses", key)
		}
	}
}

// TestE2E_InspectCommand drives the CLI the way a user would.
func TestE2E_InspectCommand(t *testing.T) {
	dir := t.TempDir()
	name := "Close Range - Challenge - 2024.01.15-10.30.00 Stats.csv"
	writeExport(t, dir, name, export(2, 24))

	rootCmd := cli.NewRootCommand()
	rootCmd.SetArgs([]string{"inspect", filepath.Join(dir, name)})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Task: Close Range", "Events (2 rows)", "Weapons (1 rows)", "Scenario"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}
