package export

import (
	"fmt"
	"io"

	"github.com/sadopc/pomo/internal/store"
	"gopkg.in/yaml.v3"
)

func ToYAML(entries []store.LogEntry, path string) error {
	return writeFile(path, "yaml", func(w io.Writer) error { return WriteYAML(w, entries) })
}

func WriteYAML(w io.Writer, entries []store.LogEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(entries)); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}
