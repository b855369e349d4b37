// Package ticktick reads TickTick backup CSV exports.
package ticktick

// NumColumns is the width of a TickTick export data row.
const NumColumns = 24

// Header is the expected TickTick export header, compared field-for-field
// against the file. A mismatch means the file is not a TickTick backup.
var Header = []string{
	"Folder Name", "List Name", "Title", "Kind", "Tags", "Content",
	"Is Check list", "Start Date", "Due Date", "Reminder", "Repeat",
	"Priority", "Status", "Created Time", "Completed Time", "Order",
	"Timezone", "Is All Day", "Is Floating", "Column Name",
	"Column Order", "View Mode", "taskId", "parentId",
}

// StatusCompleted is the Status column value TickTick uses for completed tasks.
const StatusCompleted = "2"

// Record is one task row from a TickTick export. All fields are kept as
// the raw strings from the file; interpretation happens in the converter.
type Record struct {
	FolderName    string
	ListName      string
	Title         string
	Kind          string
	Tags          string
	Content       string
	IsChecklist   string
	StartDate     string
	DueDate       string
	Reminder      string
	Repeat        string
	Priority      string
	Status        string
	CreatedTime   string
	CompletedTime string
	Order         string
	Timezone      string
	IsAllDay      string
	IsFloating    string
	ColumnName    string
	ColumnOrder   string
	ViewMode      string
	TaskID        string
	ParentID      string
}

// FromRow builds a Record from a 24-field CSV row. The caller must have
// verified the field count.
func FromRow(row []string) Record {
	return Record{
		FolderName:    row[0],
		ListName:      row[1],
		Title:         row[2],
		Kind:          row[3],
		Tags:          row[4],
		Content:       row[5],
		IsChecklist:   row[6],
		StartDate:     row[7],
		DueDate:       row[8],
		Reminder:      row[9],
		Repeat:        row[10],
		Priority:      row[11],
		Status:        row[12],
		CreatedTime:   row[13],
		CompletedTime: row[14],
		Order:         row[15],
		Timezone:      row[16],
		IsAllDay:      row[17],
		IsFloating:    row[18],
		ColumnName:    row[19],
		ColumnOrder:   row[20],
		ViewMode:      row[21],
		TaskID:        row[22],
		ParentID:      row[23],
	}
}

// Completed reports whether the record's status marks it as done.
func (r Record) Completed() bool {
	return r.Status == StatusCompleted
}
