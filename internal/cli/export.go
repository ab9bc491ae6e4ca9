package cli

import (
	"fmt"
	"strings"

	"github.com/sadopc/pomo/internal/export"
	"github.com/sadopc/pomo/internal/pomodoro"
	"github.com/sadopc/pomo/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
	exportPreset string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format: "+strings.Join(export.Formats, ", "))
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to this file instead of stdout")
	exportCmd.Flags().StringVar(&exportPreset, "preset", "", "only export focus, short_break or long_break sessions")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session log as CSV, JSON or YAML",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportPreset != "" {
		if _, ok := pomodoro.ParsePreset(exportPreset); !ok {
			return fmt.Errorf("unknown preset %q", exportPreset)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.ListLog(store.LogFilter{Preset: exportPreset})
	if err != nil {
		return err
	}

	if exportOut == "" {
		return export.Write(cmd.OutOrStdout(), exportFormat, entries)
	}
	if err := export.ToFile(exportFormat, entries, exportOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d sessions to %s\n", len(entries), exportOut)
	return nil
}
