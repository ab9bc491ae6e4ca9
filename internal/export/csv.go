package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/store"
)

func ToCSV(entries []store.LogEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, entries)
}

func WriteCSV(out io.Writer, entries []store.LogEntry) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Session", "Start", "End", "Duration (s)", "Duration"}); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Preset,
			e.StartedAt.Local().Format(time.RFC3339),
			e.CompletedAt.Local().Format(time.RFC3339),
			fmt.Sprintf("%d", e.Duration),
			formatDuration(e.Duration),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
