package todoist

import "testing"

func TestRowFields(t *testing.T) {
	task := NewTask("Buy milk @list_groceries", "", "2", "1", "2026-09-01")

	fields := task.Fields()
	if len(fields) != len(Header) {
		t.Fatalf("field count = %d, want %d", len(fields), len(Header))
	}

	want := []string{
		"task", "Buy milk @list_groceries", "", "2", "1", "", "",
		"2026-09-01", "en", "UTC", "", "None",
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("fields[%d] (%s) = %q, want %q", i, Header[i], fields[i], want[i])
		}
	}
}

func TestNoteFields(t *testing.T) {
	note := NewNote("some details")

	fields := note.Fields()
	if fields[0] != TypeNote || fields[1] != "some details" {
		t.Errorf("note fields = %v", fields)
	}
	if fields[3] != "" || fields[4] != "" {
		t.Errorf("note must carry no priority/indent, got %q/%q", fields[3], fields[4])
	}
	if note.IsTask() {
		t.Error("IsTask() = true for a note")
	}
}

func TestRowValid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain", "Buy milk"},
		{"embedded quotes", `say "hi" to everyone`},
		{"commas", "one, two, three"},
		{"accents", "blåbær på vei"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !NewNote(tt.content).Valid() {
				t.Errorf("Valid() = false for %q", tt.content)
			}
		})
	}
}
