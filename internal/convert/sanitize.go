// Package convert implements the TickTick → Todoist conversion pipeline:
// text sanitization, label synthesis, hierarchy resolution, chunking,
// record transformation and file orchestration.
package convert

import "strings"

// accentAllowList is the set of accented letters kept through
// sanitization and label synthesis. TickTick exports from Nordic
// locales carry these, and Todoist imports them cleanly.
const accentAllowList = "æøåÆØÅ"

// sanitizeReplacer is the fixed substitution table applied before the
// character filter: typographic punctuation is straightened, zero-width
// characters are dropped, carriage returns become newlines and tabs
// become spaces.
var sanitizeReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...", // ellipsis
	"\u200b", "", // zero-width space
	"\u200c", "", // zero-width non-joiner
	"\u200d", "", // zero-width joiner
	"\ufeff", "", // byte order mark
	"\r", "\n",
	"\t", " ",
)

// Sanitize normalizes arbitrary text into the restricted character set
// Todoist imports reliably: printable ASCII plus the accent allow-list,
// with all whitespace runs collapsed to single spaces.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	text = sanitizeReplacer.Replace(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= 32 && r <= 126) || r == '\n' || strings.ContainsRune(accentAllowList, r) {
			b.WriteRune(r)
		}
	}

	// Collapses embedded newlines too: multi-line text flattens to one
	// line, matching what Todoist renders for imported content.
	return strings.Join(strings.Fields(b.String()), " ")
}
