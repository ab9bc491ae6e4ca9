package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/store"
)

type document struct {
	ExportedAt string  `json:"exported_at" yaml:"exported_at"`
	Count      int     `json:"count" yaml:"count"`
	Focus      int     `json:"focus_sessions" yaml:"focus_sessions"`
	Entries    []entry `json:"entries" yaml:"entries"`
}

type entry struct {
	ID          int64  `json:"id" yaml:"id"`
	Session     string `json:"session" yaml:"session"`
	StartTime   string `json:"start_time" yaml:"start_time"`
	EndTime     string `json:"end_time" yaml:"end_time"`
	DurationSec int64  `json:"duration_seconds" yaml:"duration_seconds"`
	Duration    string `json:"duration" yaml:"duration"`
}

func buildDocument(entries []store.LogEntry) document {
	doc := document{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
	}
	for _, e := range entries {
		if e.Preset == "focus" {
			doc.Focus++
		}
		doc.Entries = append(doc.Entries, entry{
			ID:          e.ID,
			Session:     e.Preset,
			StartTime:   e.StartedAt.Local().Format(time.RFC3339),
			EndTime:     e.CompletedAt.Local().Format(time.RFC3339),
			DurationSec: e.Duration,
			Duration:    formatDuration(e.Duration),
		})
	}
	return doc
}

func ToJSON(entries []store.LogEntry, path string) error {
	return writeFile(path, "json", func(w io.Writer) error { return WriteJSON(w, entries) })
}

func WriteJSON(w io.Writer, entries []store.LogEntry) error {
	data, err := json.MarshalIndent(buildDocument(entries), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeFile(path, kind string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s file: %w", kind, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s file: %w", kind, err)
	}
	return f.Close()
}
