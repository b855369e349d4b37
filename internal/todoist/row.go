// Package todoist writes Todoist CSV import files.
package todoist

import (
	"bytes"
	"encoding/csv"
	"io"
)

// Row type discriminators.
const (
	TypeTask = "task"
	TypeNote = "note"
)

// Fixed per-row locale fields. Todoist parses the DATE column using
// these; the converter always emits dates as-is in UTC.
const (
	dateLang     = "en"
	timezone     = "UTC"
	durationUnit = "None"
)

// Header is the Todoist CSV import template header.
var Header = []string{
	"TYPE", "CONTENT", "DESCRIPTION", "PRIORITY", "INDENT", "AUTHOR",
	"RESPONSIBLE", "DATE", "DATE_LANG", "TIMEZONE", "DURATION", "DURATION_UNIT",
}

// Row is one line of a Todoist import file: either a task or a note
// attached to the preceding task.
type Row struct {
	Type        string
	Content     string
	Description string
	Priority    string
	Indent      string
	Date        string
}

// NewTask builds a task row.
func NewTask(content, description, priority, indent, date string) Row {
	return Row{
		Type:        TypeTask,
		Content:     content,
		Description: description,
		Priority:    priority,
		Indent:      indent,
		Date:        date,
	}
}

// NewNote builds a note row attached to the preceding task.
func NewNote(content string) Row {
	return Row{Type: TypeNote, Content: content}
}

// IsTask reports whether the row is a task row.
func (r Row) IsTask() bool { return r.Type == TypeTask }

// Fields returns the row in Todoist column order.
func (r Row) Fields() []string {
	return []string{
		r.Type,
		r.Content,
		r.Description,
		r.Priority,
		r.Indent,
		"", // AUTHOR
		"", // RESPONSIBLE
		r.Date,
		dateLang,
		timezone,
		"", // DURATION
		durationUnit,
	}
}

// Valid reports whether the row survives a CSV encode/decode round trip
// unchanged. Todoist rejects imports containing rows its parser cannot
// reproduce, so anything that fails here must be dropped before writing.
func (r Row) Valid() bool {
	fields := r.Fields()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return false
	}
	w.Flush()
	if w.Error() != nil {
		return false
	}

	cr := csv.NewReader(&buf)
	decoded, err := cr.Read()
	if err != nil {
		return false
	}
	if _, err := cr.Read(); err != io.EOF {
		return false
	}
	if len(decoded) != len(fields) {
		return false
	}
	for i := range fields {
		if decoded[i] != fields[i] {
			return false
		}
	}
	return true
}
