package convert

import "testing"

func TestSanitize_Substitutions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trims whitespace", "  Buy milk  ", "Buy milk"},
		{"smart double quotes", "say “hi” now", `say "hi" now`},
		{"smart apostrophe", "don’t", "don't"},
		{"en dash", "a – b", "a - b"},
		{"em dash", "a — b", "a - b"},
		{"ellipsis", "wait…", "wait..."},
		{"zero width space removed", "a​b", "ab"},
		{"zero width joiner removed", "a‍b", "ab"},
		{"bom removed", "\uFEFFhello", "hello"},
		{"tab becomes space", "a\tb", "a b"},
		{"carriage return collapses", "a\r\nb", "a b"},
		{"emoji removed", "done 🎉", "done"},
		{"accent allow-list kept", "blåbær på vei", "blåbær på vei"},
		{"other accents dropped", "café", "caf"},
		{"newlines collapse to spaces", "line one\nline two", "line one line two"},
		{"whitespace runs collapse", "a    b\n\n  c", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"  Buy milk ",
		"don’t — stop… now",
		"multi\nline\r\ntext\twith\ttabs",
		"blåbær 🎉 café ​",
		"",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSanitize_OutputCharset(t *testing.T) {
	got := Sanitize("Ærlig talt — “fjell”… ☃ ‌ over\tog ut\r\n")
	for _, r := range got {
		ascii := r >= 32 && r <= 126
		allowed := false
		for _, a := range accentAllowList {
			if r == a {
				allowed = true
			}
		}
		if !ascii && !allowed {
			t.Fatalf("output %q contains disallowed rune %q", got, r)
		}
	}
}
