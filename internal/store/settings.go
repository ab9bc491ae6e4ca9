package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sadopc/pomo/internal/pomodoro"
)

// Setting keys for the timer defaults. Durations are stored in seconds.
const (
	KeyWork           = "pomodoro_work"
	KeyShortBreak     = "pomodoro_short_break"
	KeyLongBreak      = "pomodoro_long_break"
	KeyLongBreakEvery = "pomodoro_long_break_every"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// SeedDurations writes d as the timer defaults unless they are already set.
func (s *Store) SeedDurations(d pomodoro.Durations) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?), (?, ?), (?, ?), (?, ?)`,
		KeyWork, secs(d.Work),
		KeyShortBreak, secs(d.ShortBreak),
		KeyLongBreak, secs(d.LongBreak),
		KeyLongBreakEvery, strconv.Itoa(d.LongBreakEvery),
	)
	if err != nil {
		return fmt.Errorf("seed durations: %w", err)
	}
	return nil
}

// SaveDurations overwrites the timer defaults.
func (s *Store) SaveDurations(d pomodoro.Durations) error {
	pairs := [][2]string{
		{KeyWork, secs(d.Work)},
		{KeyShortBreak, secs(d.ShortBreak)},
		{KeyLongBreak, secs(d.LongBreak)},
		{KeyLongBreakEvery, strconv.Itoa(d.LongBreakEvery)},
	}
	for _, p := range pairs {
		if err := s.SetSetting(p[0], p[1]); err != nil {
			return fmt.Errorf("save %s: %w", p[0], err)
		}
	}
	return nil
}

// Durations reads the timer defaults. Missing or malformed values fall back
// to the corresponding field of fallback.
func (s *Store) Durations(fallback pomodoro.Durations) pomodoro.Durations {
	d := fallback
	d.Work = s.settingDuration(KeyWork, fallback.Work)
	d.ShortBreak = s.settingDuration(KeyShortBreak, fallback.ShortBreak)
	d.LongBreak = s.settingDuration(KeyLongBreak, fallback.LongBreak)
	if v, err := s.GetSetting(KeyLongBreakEvery); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			d.LongBreakEvery = n
		}
	}
	return d
}

func (s *Store) settingDuration(key string, fallback time.Duration) time.Duration {
	if v, err := s.GetSetting(key); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}

func secs(d time.Duration) string {
	return strconv.Itoa(int(d / time.Second))
}
