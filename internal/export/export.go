// Package export writes the pomodoro log to CSV, JSON or YAML.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/sadopc/pomo/internal/store"
)

// Formats lists the supported format names in picker order.
var Formats = []string{"csv", "json", "yaml"}

// Write encodes entries in the named format.
func Write(w io.Writer, format string, entries []store.LogEntry) error {
	switch strings.ToLower(format) {
	case "csv":
		return WriteCSV(w, entries)
	case "json":
		return WriteJSON(w, entries)
	case "yaml", "yml":
		return WriteYAML(w, entries)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// ToFile writes entries to path in the named format.
func ToFile(format string, entries []store.LogEntry, path string) error {
	switch strings.ToLower(format) {
	case "csv":
		return ToCSV(entries, path)
	case "json":
		return ToJSON(entries, path)
	case "yaml", "yml":
		return ToYAML(entries, path)
	}
	return fmt.Errorf("unknown export format %q", format)
}
