package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eZtaR1/ticktick-to-todoist/internal/convert"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
)

// DisableColor strips all styling from console output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	successStyle = lipgloss.NewStyle()
	warnStyle = lipgloss.NewStyle()
	countStyle = lipgloss.NewStyle()
}

// Messagef writes a formatted line to the given writer.
func Messagef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Warnf writes a styled warning line to the given writer.
func Warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, warnStyle.Render("Warning: ")+fmt.Sprintf(format, args...))
}

// ConvertResult renders a conversion result: one line per written file
// plus a summary of skipped rows.
func ConvertResult(w io.Writer, res *convert.Result) {
	for _, f := range res.Files {
		line := fmt.Sprintf("Created %s with %d tasks", f.Path, f.Tasks)
		if f.Notes > 0 {
			line += fmt.Sprintf(" (%d notes)", f.Notes)
		}
		Messagef(w, "%s", successStyle.Render(line))
	}
	if len(res.Files) > 1 {
		Messagef(w, "Split %d records across %d files (Todoist caps projects at %d tasks)",
			res.Records, len(res.Files), convert.TasksPerProject)
	}
}

// InspectTable renders an inspection report as a small fixed table.
func InspectTable(w io.Writer, report *convert.Report) {
	printField(w, "Records", strconv.Itoa(report.Records))
	printField(w, "With notes", strconv.Itoa(report.WithNotes))
	if report.EmptyTitles > 0 {
		printField(w, "Empty titles", warnStyle.Render(strconv.Itoa(report.EmptyTitles))+" (would be skipped)")
	}

	depths := make([]string, 0, len(report.Depths))
	for level, n := range report.Depths {
		if n > 0 {
			depths = append(depths, fmt.Sprintf("L%d:%d", level+1, n))
		}
	}
	if len(depths) > 0 {
		printField(w, "Depths", strings.Join(depths, "  "))
	}
	printField(w, "Import files", strconv.Itoa(report.ProjectedFiles))

	if len(report.Lists) == 0 {
		return
	}

	// Lists table, widest column wins.
	nameW := len("LIST")
	for _, l := range report.Lists {
		nameW = max(nameW, len(displayName(l.Name)))
	}
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-*s  %s", nameW, "LIST", "RECORDS")))
	for _, l := range report.Lists {
		name := displayName(l.Name)
		if l.Name == "" {
			name = dimStyle.Render(name)
		}
		fmt.Fprintf(w, "%-*s  %s\n", nameW, name, countStyle.Render(strconv.Itoa(l.Records)))
	}
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-14s %s\n", label+":", value)
}

func displayName(name string) string {
	if name == "" {
		return "(none)"
	}
	return name
}
