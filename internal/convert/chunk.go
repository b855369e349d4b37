package convert

import (
	"fmt"

	"github.com/eZtaR1/ticktick-to-todoist/internal/ticktick"
)

// TasksPerProject is Todoist's per-project import limit. Inputs larger
// than this are split into multiple import files.
const TasksPerProject = 300

// Chunk is one bounded batch of records, mapped 1:1 to one output file.
type Chunk struct {
	Records []ticktick.Record
	Number  int
	Total   int
}

// SplitChunks partitions hierarchy-ordered records into chunks of at
// most TasksPerProject, preserving order. When more than one chunk is
// produced, every record gets a synthetic "part_N_of_M" tag appended so
// the split is traceable after import. A single chunk is returned
// untouched.
func SplitChunks(records []ticktick.Record) []Chunk {
	if len(records) <= TasksPerProject {
		return []Chunk{{Records: records, Number: 1, Total: 1}}
	}

	total := (len(records) + TasksPerProject - 1) / TasksPerProject
	chunks := make([]Chunk, 0, total)

	for i := 0; i < total; i++ {
		start := i * TasksPerProject
		end := min(start+TasksPerProject, len(records))

		part := make([]ticktick.Record, end-start)
		copy(part, records[start:end])

		tag := fmt.Sprintf("part_%d_of_%d", i+1, total)
		for j := range part {
			if part[j].Tags != "" {
				part[j].Tags += "," + tag
			} else {
				part[j].Tags = tag
			}
		}

		chunks = append(chunks, Chunk{Records: part, Number: i + 1, Total: total})
	}

	return chunks
}
