package store

import (
	"fmt"
	"time"
)

const presetFocus = "focus"

// LogSession records a finished session of the given preset that ran for
// duration and ended at completedAt.
func (s *Store) LogSession(preset string, duration time.Duration, completedAt time.Time) (*LogEntry, error) {
	completedAt = completedAt.UTC()
	startedAt := completedAt.Add(-duration)
	res, err := s.db.Exec(
		`INSERT INTO pomodoro_log (preset, duration, started_at, completed_at) VALUES (?, ?, ?, ?)`,
		preset, int64(duration.Seconds()),
		startedAt.Format(time.RFC3339), completedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("log session: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetLogEntry(id)
}

func (s *Store) GetLogEntry(id int64) (*LogEntry, error) {
	e := &LogEntry{}
	var startedAt, completedAt string
	err := s.db.QueryRow(
		`SELECT id, preset, duration, started_at, completed_at FROM pomodoro_log WHERE id = ?`, id,
	).Scan(&e.ID, &e.Preset, &e.Duration, &startedAt, &completedAt)
	if err != nil {
		return nil, fmt.Errorf("get log entry %d: %w", id, err)
	}
	e.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	e.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
	return e, nil
}

// ListLog returns log entries, newest first.
func (s *Store) ListLog(f LogFilter) ([]LogEntry, error) {
	query := `SELECT id, preset, duration, started_at, completed_at FROM pomodoro_log WHERE 1=1`
	var args []any

	if f.Preset != "" {
		query += ` AND preset = ?`
		args = append(args, f.Preset)
	}
	if f.From != nil {
		query += ` AND completed_at >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND completed_at < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY completed_at DESC, id DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list log: %w", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var startedAt, completedAt string
		if err := rows.Scan(&e.ID, &e.Preset, &e.Duration, &startedAt, &completedAt); err != nil {
			return nil, err
		}
		e.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		e.CompletedAt, _ = time.Parse(time.RFC3339, completedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountFocus returns the number of finished focus sessions and their total
// length in seconds within [from, to).
func (s *Store) CountFocus(from, to time.Time) (count int, totalSecs int64, err error) {
	err = s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(duration), 0)
		FROM pomodoro_log
		WHERE preset = ?
		  AND completed_at >= ? AND completed_at < ?`,
		presetFocus, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	).Scan(&count, &totalSecs)
	return
}

// TotalFocus returns the all-time number of finished focus sessions.
func (s *Store) TotalFocus() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pomodoro_log WHERE preset = ?`, presetFocus).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("total focus: %w", err)
	}
	return n, nil
}

// GetDailyCounts aggregates finished focus sessions per UTC day in [from, to).
// Days without sessions are omitted.
func (s *Store) GetDailyCounts(from, to time.Time) ([]DailyCount, error) {
	rows, err := s.db.Query(`
		SELECT date(completed_at) AS day, COUNT(*), COALESCE(SUM(duration), 0)
		FROM pomodoro_log
		WHERE preset = ?
		  AND completed_at >= ? AND completed_at < ?
		GROUP BY day
		ORDER BY day`,
		presetFocus, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}
	defer rows.Close()

	var counts []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count, &dc.FocusSeconds); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}
