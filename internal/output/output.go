// Package output handles formatting CLI output as plain text or JSON.
package output

import (
	"os"
)

// Format represents an output format.
type Format int

const (
	// FormatPlain outputs human-readable text (the default).
	FormatPlain Format = iota
	// FormatJSON outputs JSON.
	FormatJSON
)

// Detect returns the appropriate format based on flags and environment.
func Detect(jsonFlag bool) Format {
	if jsonFlag {
		return FormatJSON
	}
	if os.Getenv("TICKTICK2TODOIST_OUTPUT") == "json" {
		return FormatJSON
	}
	return FormatPlain
}
