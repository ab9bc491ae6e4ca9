// Package cli implements the pomo command-line interface using Cobra.
// Running pomo without a subcommand opens the terminal UI.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomo/internal/config"
	"github.com/sadopc/pomo/internal/tui"
	"github.com/spf13/cobra"
)

// configPath overrides the config file location when set with --config.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "pomo: a terminal Pomodoro timer with a to-do list",
	Long: `pomo runs focus sessions and breaks in your terminal.

Work for a focus session, take a short break, and after every fourth
pomodoro take a long break. Finished sessions are logged so you can
review them with 'pomo stats' or 'pomo export'.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $POMO_HOME/config.toml)")
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	app := tui.NewApp(s, s.Durations(cfg.Durations()))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to the configured file. With no
// file configured and POMO_DEBUG unset, log output is discarded so it never
// lands on the UI.
func setupLogging(cfg config.Config) (func(), error) {
	path := cfg.Logging.File
	if path == "" && os.Getenv("POMO_DEBUG") != "" {
		path = filepath.Join(config.Home(), "debug.log")
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "pomo")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}
