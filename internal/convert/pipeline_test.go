package convert

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eZtaR1/ticktick-to-todoist/internal/clierr"
	"github.com/eZtaR1/ticktick-to-todoist/internal/ticktick"
	"github.com/eZtaR1/ticktick-to-todoist/internal/todoist"
)

// dataRow builds a 24-column TickTick row with the given key fields set.
func dataRow(id, parent, title, list, tags, content, priority string) []string {
	row := make([]string, ticktick.NumColumns)
	row[1] = list
	row[2] = title
	row[4] = tags
	row[5] = content
	row[11] = priority
	row[22] = id
	row[23] = parent
	return row
}

// writeBackup writes a TickTick-shaped backup file: 6 metadata lines,
// the header, then the given rows.
func writeBackup(t *testing.T, dir string, rows [][]string) string {
	t.Helper()
	return writeBackupHeader(t, dir, ticktick.Header, rows)
}

func writeBackupHeader(t *testing.T, dir string, header []string, rows [][]string) string {
	t.Helper()

	var buf bytes.Buffer
	for i := 0; i < 6; i++ {
		fmt.Fprintf(&buf, "\"Meta line %d\"\n", i+1)
	}
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		t.Fatalf("writing header: %v", err)
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("writing rows: %v", err)
	}

	path := filepath.Join(dir, "ticktick_backup.csv")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("writing backup: %v", err)
	}
	return path
}

// readImport parses a written Todoist import file back into rows.
func readImport(t *testing.T, path string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Errorf("%s does not start with a UTF-8 BOM", path)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return rows
}

func TestRun_SingleFile(t *testing.T) {
	dir := t.TempDir()
	input := writeBackup(t, dir, [][]string{
		dataRow("a", "", "Buy milk ", "Groceries", "", "", "0"),
		dataRow("b", "a", "Skimmed", "Groceries", "", "remember the lactose-free one", "0"),
	})

	res, err := Run(input, Options{IncludePriority: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Files) != 1 {
		t.Fatalf("file count = %d, want 1", len(res.Files))
	}
	if res.Files[0].Tasks != 2 {
		t.Errorf("task count = %d, want 2", res.Files[0].Tasks)
	}
	if res.Files[0].Notes != 1 {
		t.Errorf("note count = %d, want 1", res.Files[0].Notes)
	}
	if got, want := filepath.Base(res.Files[0].Path), "todoist_import.csv"; got != want {
		t.Errorf("filename = %q, want %q", got, want)
	}

	rows := readImport(t, res.Files[0].Path)
	if len(rows) != 4 { // header + 2 tasks + 1 note
		t.Fatalf("row count = %d, want 4", len(rows))
	}
	for i, col := range todoist.Header {
		if rows[0][i] != col {
			t.Fatalf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][1] != "Buy milk @list_groceries" {
		t.Errorf("task content = %q", rows[1][1])
	}
	if rows[1][4] != "1" || rows[2][4] != "2" {
		t.Errorf("indents = %q/%q, want 1/2", rows[1][4], rows[2][4])
	}
	if rows[3][0] != "note" {
		t.Errorf("third row type = %q, want note", rows[3][0])
	}
}

func TestRun_HierarchyOrderInOutput(t *testing.T) {
	dir := t.TempDir()
	// Child appears before its parent in the source; output must place
	// the parent first.
	input := writeBackup(t, dir, [][]string{
		dataRow("child", "root", "Child", "", "", "", "0"),
		dataRow("root", "", "Root", "", "", "", "0"),
	})

	res, err := Run(input, Options{IncludePriority: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows := readImport(t, res.Files[0].Path)
	if rows[1][1] != "Root" || rows[2][1] != "Child" {
		t.Errorf("output order = %q, %q; want Root, Child", rows[1][1], rows[2][1])
	}
}

func TestRun_HeaderMismatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	badHeader := append([]string{}, ticktick.Header...)
	badHeader[0] = "Wrong Column"
	input := writeBackupHeader(t, dir, badHeader, nil)

	_, err := Run(input, Options{IncludePriority: true})

	var cliErr *clierr.Error
	if !errors.As(err, &cliErr) || cliErr.Code != clierr.FormatError {
		t.Fatalf("err = %v, want FORMAT_ERROR", err)
	}

	entries, globErr := filepath.Glob(filepath.Join(dir, "todoist_import*"))
	if globErr != nil {
		t.Fatalf("glob: %v", globErr)
	}
	if len(entries) != 0 {
		t.Errorf("output files written despite format error: %v", entries)
	}
}

func TestRun_SplitsAt300(t *testing.T) {
	dir := t.TempDir()
	rows := make([][]string, 301)
	for i := range rows {
		rows[i] = dataRow(fmt.Sprintf("id%d", i), "", fmt.Sprintf("Task %d", i), "", "", "", "0")
	}
	input := writeBackup(t, dir, rows)

	outDir := filepath.Join(dir, "out")
	res, err := Run(input, Options{IncludePriority: true, OutputDir: outDir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Files) != 2 {
		t.Fatalf("file count = %d, want 2", len(res.Files))
	}
	if got := filepath.Base(res.Files[0].Path); got != "todoist_import_part1.csv" {
		t.Errorf("first filename = %q", got)
	}
	if got := filepath.Base(res.Files[1].Path); got != "todoist_import_part2.csv" {
		t.Errorf("second filename = %q", got)
	}
	if res.Files[0].Tasks != 300 || res.Files[1].Tasks != 1 {
		t.Errorf("task counts = %d/%d, want 300/1", res.Files[0].Tasks, res.Files[1].Tasks)
	}

	for i, f := range res.Files {
		wantTag := fmt.Sprintf("@part_%d_of_2", i+1)
		imported := readImport(t, f.Path)
		for _, row := range imported[1:] {
			if !strings.Contains(row[1], wantTag) {
				t.Fatalf("row %q in %s missing %q", row[1], f.Path, wantTag)
			}
		}
	}
}

func TestRun_EmptyTitlesReduceTaskCount(t *testing.T) {
	dir := t.TempDir()
	input := writeBackup(t, dir, [][]string{
		dataRow("a", "", "Keep me", "", "", "", "0"),
		dataRow("b", "", "🎉", "", "", "", "0"), // sanitizes to nothing
	})

	res, err := Run(input, Options{IncludePriority: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Records != 2 {
		t.Errorf("records = %d, want 2", res.Records)
	}
	if res.Files[0].Tasks != 1 {
		t.Errorf("task count = %d, want 1 (empty title discarded)", res.Files[0].Tasks)
	}
}

func TestRun_CRLFOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeBackup(t, dir, [][]string{
		dataRow("a", "", "One", "", "", "", "0"),
	})

	res, err := Run(input, Options{IncludePriority: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(res.Files[0].Path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.Contains(data, []byte("\r\n")) {
		t.Error("output does not use CRLF line endings")
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	input := writeBackup(t, dir, [][]string{
		dataRow("a", "", "Root", "Home", "", "a note", "0"),
		dataRow("b", "a", "Child", "Home", "", "", "0"),
		dataRow("c", "", "", "Work", "", "", "0"),
	})

	report, warnings, err := Inspect(input)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	if report.Records != 3 {
		t.Errorf("records = %d, want 3", report.Records)
	}
	if report.EmptyTitles != 1 {
		t.Errorf("empty titles = %d, want 1", report.EmptyTitles)
	}
	if report.WithNotes != 1 {
		t.Errorf("with notes = %d, want 1", report.WithNotes)
	}
	if report.Depths[0] != 2 || report.Depths[1] != 1 {
		t.Errorf("depths = %v, want [2 1 0 0]", report.Depths)
	}
	if report.ProjectedFiles != 1 {
		t.Errorf("projected files = %d, want 1", report.ProjectedFiles)
	}
	if len(report.Lists) != 2 || report.Lists[0].Name != "Home" || report.Lists[0].Records != 2 {
		t.Errorf("lists = %+v", report.Lists)
	}
}
