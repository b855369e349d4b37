package convert

import "strings"

var labelSeparatorReplacer = strings.NewReplacer(" ", "_", "-", "_")

// LabelToken converts an arbitrary name (folder, list, tag) into a
// Todoist label token: lowercase alphanumerics, underscores and the
// accent allow-list only. Returns "" for names with nothing usable;
// callers must skip empty tokens rather than emit a bare "@".
func LabelToken(name string) string {
	if name == "" {
		return ""
	}

	cleaned := labelSeparatorReplacer.Replace(name)

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		if isAlphanumeric(r) || r == '_' || strings.ContainsRune(accentAllowList, r) {
			b.WriteRune(r)
		}
	}
	cleaned = b.String()

	for strings.Contains(cleaned, "__") {
		cleaned = strings.ReplaceAll(cleaned, "__", "_")
	}
	cleaned = strings.Trim(cleaned, "_")

	return strings.ToLower(cleaned)
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
