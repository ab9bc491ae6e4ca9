// Package config loads pomo's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sadopc/pomo/internal/pomodoro"
)

const fileName = "config.toml"

type Config struct {
	Timer   TimerConfig   `toml:"timer"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

// TimerConfig seeds the timer durations on first run. Later edits made in
// the settings view are stored in the database and take precedence.
type TimerConfig struct {
	WorkMinutes       int `toml:"work_minutes"`
	ShortBreakMinutes int `toml:"short_break_minutes"`
	LongBreakMinutes  int `toml:"long_break_minutes"`
	LongBreakEvery    int `toml:"long_break_every"`
}

type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// LoggingConfig controls the debug log. An empty File disables it.
type LoggingConfig struct {
	File string `toml:"file"`
}

func Default() Config {
	return Config{
		Timer: TimerConfig{
			WorkMinutes:       int(pomodoro.DefaultWork / time.Minute),
			ShortBreakMinutes: int(pomodoro.DefaultShortBreak / time.Minute),
			LongBreakMinutes:  int(pomodoro.DefaultLongBreak / time.Minute),
			LongBreakEvery:    pomodoro.DefaultLongBreakEvery,
		},
		Storage: StorageConfig{
			DBPath: filepath.Join(Home(), "pomo.db"),
		},
	}
}

// Load reads the config file from Home, falling back to defaults when the
// file does not exist.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path. Missing keys keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the timer cannot run with.
func (c Config) Validate() error {
	t := c.Timer
	if t.WorkMinutes < 1 || t.ShortBreakMinutes < 1 || t.LongBreakMinutes < 1 {
		return errors.New("timer durations must be at least 1 minute")
	}
	if t.LongBreakEvery < 1 {
		return errors.New("long_break_every must be at least 1")
	}
	if c.Storage.DBPath == "" {
		return errors.New("storage.db_path is empty")
	}
	return nil
}

// Durations converts the timer section for pomodoro.New.
func (c Config) Durations() pomodoro.Durations {
	return pomodoro.Durations{
		Work:           time.Duration(c.Timer.WorkMinutes) * time.Minute,
		ShortBreak:     time.Duration(c.Timer.ShortBreakMinutes) * time.Minute,
		LongBreak:      time.Duration(c.Timer.LongBreakMinutes) * time.Minute,
		LongBreakEvery: c.Timer.LongBreakEvery,
	}
}

// Save writes cfg to path, creating parent directories.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, cfg)
}

func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(Home(), fileName)
}

// Home returns $POMO_HOME, or <user config dir>/pomo.
func Home() string {
	if env := os.Getenv("POMO_HOME"); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".pomo")
	}
	return filepath.Join(dir, "pomo")
}
