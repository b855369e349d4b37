package convert

import (
	"sort"

	"github.com/eZtaR1/ticktick-to-todoist/internal/ticktick"
)

// ListStat counts records belonging to one TickTick list.
type ListStat struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

// Report summarizes an export without writing any output: what a
// conversion run would produce.
type Report struct {
	Records        int            `json:"records"`
	EmptyTitles    int            `json:"empty_titles"`
	WithNotes      int            `json:"with_notes"`
	Depths         [MaxIndent]int `json:"depths"`
	Lists          []ListStat     `json:"lists"`
	ProjectedFiles int            `json:"projected_files"`
}

// Inspect parses the export, resolves the hierarchy and reports counts.
// Shares the reader's non-fatal warnings with the caller.
func Inspect(inputPath string) (*Report, []ticktick.ReadWarning, error) {
	records, warnings, err := ticktick.Read(inputPath)
	if err != nil {
		return nil, nil, err
	}

	index, _ := ResolveHierarchy(records)

	report := &Report{
		Records:        len(records),
		ProjectedFiles: (len(records) + TasksPerProject - 1) / TasksPerProject,
	}
	if report.ProjectedFiles == 0 {
		report.ProjectedFiles = 1
	}

	listCounts := make(map[string]int)
	for _, rec := range records {
		if Sanitize(rec.Title) == "" {
			report.EmptyTitles++
		}
		if rec.Content != "" {
			report.WithNotes++
		}
		if level := index[rec.TaskID]; level >= 1 && level <= MaxIndent {
			report.Depths[level-1]++
		}
		listCounts[rec.ListName]++
	}

	for name, n := range listCounts {
		report.Lists = append(report.Lists, ListStat{Name: name, Records: n})
	}
	sort.Slice(report.Lists, func(i, j int) bool {
		if report.Lists[i].Records != report.Lists[j].Records {
			return report.Lists[i].Records > report.Lists[j].Records
		}
		return report.Lists[i].Name < report.Lists[j].Name
	})

	return report, warnings, nil
}
