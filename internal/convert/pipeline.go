package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eZtaR1/ticktick-to-todoist/internal/clierr"
	"github.com/eZtaR1/ticktick-to-todoist/internal/ticktick"
	"github.com/eZtaR1/ticktick-to-todoist/internal/todoist"
)

const outputDirMode = 0o750

// Options configure a conversion run.
type Options struct {
	// OutputDir is where import files are written. Empty means next to
	// the input file. Created if absent.
	OutputDir string
	// IncludePriority maps TickTick priorities instead of defaulting all
	// tasks to Todoist's lowest priority.
	IncludePriority bool
}

// FileResult describes one written import file.
type FileResult struct {
	Path  string `json:"path"`
	Tasks int    `json:"tasks"`
	Notes int    `json:"notes"`
}

// Result is the outcome of a conversion run. Warnings are non-fatal:
// the run completed, but some rows or notes were skipped.
type Result struct {
	Files        []FileResult           `json:"files"`
	Records      int                    `json:"records"`
	ReadWarnings []ticktick.ReadWarning `json:"-"`
	NoteDiscards []NoteDiscard          `json:"note_discards,omitempty"`
}

// Run executes the full pipeline: read, resolve hierarchy, reorder,
// chunk, transform, write. Output files already written stay on disk if
// a later chunk fails; the tool is offline and re-runnable, so partial
// completion is acceptable.
func Run(inputPath string, opts Options) (*Result, error) {
	records, warnings, err := ticktick.Read(inputPath)
	if err != nil {
		return nil, err
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = filepath.Dir(inputPath)
	} else if err := os.MkdirAll(outDir, outputDirMode); err != nil {
		return nil, clierr.Newf(clierr.IOError, "creating output directory %s: %v", outDir, err)
	}

	index, order := ResolveHierarchy(records)
	ordered := Reorder(records, order)
	chunks := SplitChunks(ordered)

	tr := Transformer{IncludePriority: opts.IncludePriority}
	result := &Result{Records: len(records), ReadWarnings: warnings}

	for _, chunk := range chunks {
		var rows []todoist.Row
		tasks, notes := 0, 0

		for _, rec := range chunk.Records {
			recRows, discard := tr.Apply(rec, index[rec.TaskID])
			if discard != nil {
				result.NoteDiscards = append(result.NoteDiscards, *discard)
			}
			for _, row := range recRows {
				if row.IsTask() {
					tasks++
				} else {
					notes++
				}
			}
			rows = append(rows, recRows...)
		}

		path := filepath.Join(outDir, FileName(chunk.Number, chunk.Total))
		if err := todoist.WriteFile(path, rows); err != nil {
			return nil, clierr.Newf(clierr.IOError, "writing %s: %v", path, err)
		}

		result.Files = append(result.Files, FileResult{Path: path, Tasks: tasks, Notes: notes})
	}

	return result, nil
}

// FileName returns the import filename for a chunk: todoist_import.csv
// for a single chunk, todoist_import_partN.csv when split.
func FileName(number, total int) string {
	if total > 1 {
		return fmt.Sprintf("todoist_import_part%d.csv", number)
	}
	return "todoist_import.csv"
}
