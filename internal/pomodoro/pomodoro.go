// Package pomodoro implements the work/break session state machine that
// drives the timer. It has no notion of wall-clock time: callers feed it one
// Tick per elapsed second.
package pomodoro

import (
	"fmt"
	"time"
)

// Session is the kind of interval currently counting down.
type Session int

const (
	SessionWork Session = iota
	SessionBreak
)

func (s Session) String() string {
	if s == SessionBreak {
		return "break"
	}
	return "work"
}

// Status is the run state of the countdown.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
)

var statusNames = map[Status]string{
	StatusIdle:    "idle",
	StatusRunning: "running",
	StatusPaused:  "paused",
}

func (s Status) String() string { return statusNames[s] }

// Preset selects which configured duration backs the active session.
type Preset int

const (
	PresetFocus Preset = iota
	PresetShortBreak
	PresetLongBreak
)

var presetNames = map[Preset]string{
	PresetFocus:      "focus",
	PresetShortBreak: "short_break",
	PresetLongBreak:  "long_break",
}

func (p Preset) String() string { return presetNames[p] }

// ParsePreset looks up a preset by its String name.
func ParsePreset(name string) (Preset, bool) {
	for p, n := range presetNames {
		if n == name {
			return p, true
		}
	}
	return PresetFocus, false
}

// Label is the human-readable name shown in the UI.
func (p Preset) Label() string {
	switch p {
	case PresetShortBreak:
		return "Short Break"
	case PresetLongBreak:
		return "Long Break"
	}
	return "Focus"
}

// Session returns the session kind the preset runs.
func (p Preset) Session() Session {
	if p == PresetFocus {
		return SessionWork
	}
	return SessionBreak
}

const (
	// MinDuration is the floor for every configurable duration.
	MinDuration = time.Minute
	// Step is the amount a single adjust click adds or removes.
	Step = time.Minute

	DefaultWork           = 25 * time.Minute
	DefaultShortBreak     = 5 * time.Minute
	DefaultLongBreak      = 15 * time.Minute
	DefaultLongBreakEvery = 4
)

// Durations configures a Timer.
type Durations struct {
	Work           time.Duration
	ShortBreak     time.Duration
	LongBreak      time.Duration
	LongBreakEvery int
}

// DefaultDurations returns the classic 25/5/15 cadence with a long break
// after every fourth focus session.
func DefaultDurations() Durations {
	return Durations{
		Work:           DefaultWork,
		ShortBreak:     DefaultShortBreak,
		LongBreak:      DefaultLongBreak,
		LongBreakEvery: DefaultLongBreakEvery,
	}
}

// Transition describes a session switch produced by Tick.
type Transition struct {
	From      Session
	To        Session
	Finished  Preset // preset of the session that ended
	Preset    Preset // preset of the session being entered
	Completed int    // CompletedSessions after the switch
	Elapsed   time.Duration
	At        time.Time
}

// Timer is the countdown state. The zero value is not usable; call New.
type Timer struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	LongBreakEvery     int

	CurrentTime       time.Duration
	CurrentSession    Session
	Status            Status
	CompletedSessions int
	Preset            Preset

	// sessionLength is the duration the active session started with, used for
	// progress and for reporting how long a finished session ran.
	sessionLength time.Duration
	now           func() time.Time
}

// New creates an idle timer positioned at the start of a focus session.
func New(d Durations) *Timer {
	t := &Timer{
		WorkDuration:       normalize(d.Work, DefaultWork),
		ShortBreakDuration: normalize(d.ShortBreak, DefaultShortBreak),
		LongBreakDuration:  normalize(d.LongBreak, DefaultLongBreak),
		LongBreakEvery:     d.LongBreakEvery,
		now:                time.Now,
	}
	if t.LongBreakEvery < 1 {
		t.LongBreakEvery = DefaultLongBreakEvery
	}
	t.Reset()
	return t
}

// WithClock overrides the clock used to stamp transitions.
func (t *Timer) WithClock(now func() time.Time) *Timer {
	t.now = now
	return t
}

func normalize(d, fallback time.Duration) time.Duration {
	if d == 0 {
		d = fallback
	}
	d = d.Truncate(time.Second)
	if d < MinDuration {
		d = MinDuration
	}
	return d
}

// Apply replaces the configured durations. An idle timer rewinds so the new
// focus length is shown; a running or paused countdown keeps its place.
func (t *Timer) Apply(d Durations) {
	t.WorkDuration = normalize(d.Work, DefaultWork)
	t.ShortBreakDuration = normalize(d.ShortBreak, DefaultShortBreak)
	t.LongBreakDuration = normalize(d.LongBreak, DefaultLongBreak)
	if d.LongBreakEvery >= 1 {
		t.LongBreakEvery = d.LongBreakEvery
	}
	if t.Status == StatusIdle {
		t.enter(t.Preset)
		return
	}
	if d := t.DurationOf(t.Preset); t.CurrentTime > d {
		t.CurrentTime = d
		t.sessionLength = d
	}
}

// DurationOf returns the configured duration for a preset.
func (t *Timer) DurationOf(p Preset) time.Duration {
	switch p {
	case PresetShortBreak:
		return t.ShortBreakDuration
	case PresetLongBreak:
		return t.LongBreakDuration
	}
	return t.WorkDuration
}

func (t *Timer) setDuration(p Preset, d time.Duration) {
	switch p {
	case PresetShortBreak:
		t.ShortBreakDuration = d
	case PresetLongBreak:
		t.LongBreakDuration = d
	default:
		t.WorkDuration = d
	}
}

func (t *Timer) enter(p Preset) {
	t.Preset = p
	t.CurrentSession = p.Session()
	t.CurrentTime = t.DurationOf(p)
	t.sessionLength = t.CurrentTime
}

// Tick advances the countdown by one second. It does nothing unless the timer
// is running. When the countdown reaches zero the session switches and the
// transition is returned.
func (t *Timer) Tick() (*Transition, bool) {
	if t.Status != StatusRunning {
		return nil, false
	}
	if t.CurrentTime > 0 {
		t.CurrentTime -= time.Second
		if t.CurrentTime < 0 {
			t.CurrentTime = 0
		}
	}
	if t.CurrentTime > 0 {
		return nil, false
	}
	return t.switchSession(), true
}

func (t *Timer) switchSession() *Transition {
	tr := &Transition{
		From:     t.CurrentSession,
		Finished: t.Preset,
		Elapsed:  t.sessionLength,
		At:       t.now(),
	}
	if t.CurrentSession == SessionWork {
		t.CompletedSessions++
		if t.CompletedSessions%t.LongBreakEvery == 0 {
			t.enter(PresetLongBreak)
		} else {
			t.enter(PresetShortBreak)
		}
	} else {
		t.enter(PresetFocus)
	}
	tr.To = t.CurrentSession
	tr.Preset = t.Preset
	tr.Completed = t.CompletedSessions
	return tr
}

// StartPause toggles between running and paused. An idle timer starts.
func (t *Timer) StartPause() {
	if t.Status == StatusRunning {
		t.Status = StatusPaused
		return
	}
	t.Status = StatusRunning
}

// Reset stops the timer and rewinds to a fresh focus session. The completed
// session count is kept.
func (t *Timer) Reset() {
	t.Status = StatusIdle
	t.enter(PresetFocus)
}

// Adjust changes the duration backing p by delta, never going below
// MinDuration. If p is the active preset the countdown restarts at the new
// duration.
func (t *Timer) Adjust(p Preset, delta time.Duration) {
	d := t.DurationOf(p) + delta
	if d < MinDuration {
		d = MinDuration
	}
	t.setDuration(p, d)
	if t.Preset == p {
		t.CurrentTime = d
		t.sessionLength = d
	}
}

// Increment adds one Step to p.
func (t *Timer) Increment(p Preset) { t.Adjust(p, Step) }

// Decrement removes one Step from p.
func (t *Timer) Decrement(p Preset) { t.Adjust(p, -Step) }

// Select jumps to the given preset without touching the run status.
func (t *Timer) Select(p Preset) {
	t.enter(p)
}

// Running reports whether the countdown is live.
func (t *Timer) Running() bool { return t.Status == StatusRunning }

// Remaining returns the time left in the active session.
func (t *Timer) Remaining() time.Duration { return t.CurrentTime }

// Progress returns the remaining fraction of the active session in [0, 1].
func (t *Timer) Progress() float64 {
	if t.sessionLength <= 0 {
		return 0
	}
	f := float64(t.CurrentTime) / float64(t.sessionLength)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// NextBreak returns the break preset the next finished focus session leads to.
func (t *Timer) NextBreak() Preset {
	if (t.CompletedSessions+1)%t.LongBreakEvery == 0 {
		return PresetLongBreak
	}
	return PresetShortBreak
}

// FormatClock renders d as MM:SS. Minutes are not wrapped at an hour.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
