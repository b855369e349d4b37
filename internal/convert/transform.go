package convert

import (
	"strconv"
	"strings"

	"github.com/eZtaR1/ticktick-to-todoist/internal/ticktick"
	"github.com/eZtaR1/ticktick-to-todoist/internal/todoist"
)

// priorityMap translates TickTick priority codes to Todoist priorities.
// TickTick: 0 none, 1 low, 3 medium, 5 high. Todoist: 1 highest, 4 lowest.
var priorityMap = map[string]string{
	"0": "4",
	"5": "3",
	"3": "2",
	"1": "1",
}

// defaultPriority is used for unmapped codes and when priority mapping
// is disabled.
const defaultPriority = "4"

// Transformer maps source records into Todoist rows.
type Transformer struct {
	// IncludePriority controls whether TickTick priorities are mapped.
	// When false every task gets the default priority.
	IncludePriority bool
}

// NoteDiscard reports a note that was dropped because its serialized
// form does not survive Todoist's CSV round trip.
type NoteDiscard struct {
	TaskID string `json:"task_id"`
	Title  string `json:"title"`
}

// Apply converts one record at the given indent level into Todoist
// rows: a task row, optionally followed by a note row carrying the
// record's description. A record whose title sanitizes to nothing is
// not a renderable task and produces no rows at all. A non-nil discard
// means the record's note was dropped.
func (t Transformer) Apply(rec ticktick.Record, indent int) (rows []todoist.Row, discard *NoteDiscard) {
	title := Sanitize(rec.Title)
	if title == "" {
		return nil, nil
	}

	content := title
	if labels := t.labels(rec); len(labels) > 0 {
		content += " @" + strings.Join(labels, " @")
	}

	rows = append(rows, todoist.NewTask(content, "", t.priority(rec), strconv.Itoa(indent), rec.DueDate))

	if rec.Content != "" {
		note := todoist.NewNote(Sanitize(rec.Content))
		if note.Valid() {
			rows = append(rows, note)
		} else {
			discard = &NoteDiscard{TaskID: rec.TaskID, Title: title}
		}
	}

	return rows, discard
}

// labels assembles the label tokens for a record: list, folder, a
// literal "completed" marker, then the record's own tags. Names that
// synthesize to nothing are skipped so no bare "@" is ever emitted.
func (t Transformer) labels(rec ticktick.Record) []string {
	var labels []string

	if token := LabelToken(rec.ListName); token != "" {
		labels = append(labels, "list_"+token)
	}
	if token := LabelToken(rec.FolderName); token != "" {
		labels = append(labels, "folder_"+token)
	}
	if rec.Completed() {
		labels = append(labels, "completed")
	}
	if rec.Tags != "" {
		for _, tag := range strings.Split(rec.Tags, ",") {
			if token := LabelToken(strings.TrimSpace(tag)); token != "" {
				labels = append(labels, token)
			}
		}
	}

	return labels
}

func (t Transformer) priority(rec ticktick.Record) string {
	if !t.IncludePriority {
		return defaultPriority
	}
	if p, ok := priorityMap[strings.TrimSpace(rec.Priority)]; ok {
		return p
	}
	return defaultPriority
}
