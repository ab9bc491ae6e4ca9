package store

import "time"

// LogEntry is one finished session in the pomodoro log.
type LogEntry struct {
	ID          int64
	Preset      string // focus, short_break, long_break
	Duration    int64  // seconds
	StartedAt   time.Time
	CompletedAt time.Time
}

type Setting struct {
	Key   string
	Value string
}

// LogFilter is used to filter log entries in queries.
type LogFilter struct {
	Preset string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// DailyCount aggregates finished focus sessions per day.
type DailyCount struct {
	Date         string
	Count        int
	FocusSeconds int64
}
