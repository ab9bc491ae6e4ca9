package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/pomo/internal/pomodoro"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/tasks"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func shortDurations() pomodoro.Durations {
	return pomodoro.Durations{
		Work:           2 * time.Minute,
		ShortBreak:     time.Minute,
		LongBreak:      3 * time.Minute,
		LongBreakEvery: 4,
	}
}

func newTestPomodoro(t *testing.T) pomodoroModel {
	t.Helper()
	p := newPomodoroModel(newTestStore(t), shortDurations())
	p.bellOut = nil
	return p
}

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(newTestStore(t), shortDurations())
	a.dashboard.pomodoro.bellOut = nil
	a.exportDir = t.TempDir()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return app, cmd
}

// ============================================================
// Ticker
// ============================================================

func TestTickerRestart(t *testing.T) {
	tk := newTicker()
	if tk.interval != time.Second {
		t.Fatalf("interval = %v, want 1s", tk.interval)
	}

	if cmd := tk.restart(false); cmd != nil {
		t.Fatal("restart while stopped should not arm a tick")
	}
	if tk.id != 1 {
		t.Fatalf("id = %d, want 1", tk.id)
	}

	if cmd := tk.restart(true); cmd == nil {
		t.Fatal("restart while running should arm a tick")
	}
	if tk.id != 2 {
		t.Fatalf("id = %d, want 2", tk.id)
	}
}

func TestTickerCurrent(t *testing.T) {
	tk := newTicker()
	tk.restart(true)
	old := tickMsg{id: tk.id}
	tk.restart(true)

	if tk.current(old) {
		t.Fatal("tick from a cancelled chain should be stale")
	}
	if !tk.current(tickMsg{id: tk.id}) {
		t.Fatal("tick from the live chain should be current")
	}
}

// ============================================================
// Pomodoro model
// ============================================================

func TestPomodoroInit(t *testing.T) {
	p := newTestPomodoro(t)
	if p.timer.Status != pomodoro.StatusIdle {
		t.Fatalf("status = %s, want idle", p.timer.Status)
	}
	if p.timer.Remaining() != 2*time.Minute {
		t.Fatalf("remaining = %v, want 2m", p.timer.Remaining())
	}
	if p.timer.CompletedSessions != 0 {
		t.Fatal("completed sessions should start at 0")
	}
}

func TestPomodoroStartPauseKey(t *testing.T) {
	p := newTestPomodoro(t)

	p, cmd := p.update(press(" "))
	if !p.timer.Running() {
		t.Fatal("space should start the timer")
	}
	if cmd == nil {
		t.Fatal("starting should arm a tick")
	}

	p, cmd = p.update(press(" "))
	if p.timer.Status != pomodoro.StatusPaused {
		t.Fatal("space should pause a running timer")
	}
	if cmd != nil {
		t.Fatal("pausing should not arm a tick")
	}
}

func TestPomodoroTickDecrements(t *testing.T) {
	p := newTestPomodoro(t)
	p, _ = p.update(press(" "))

	for i := 0; i < 5; i++ {
		var cmd tea.Cmd
		p, cmd = p.update(tickMsg{id: p.ticker.id, at: time.Now()})
		if cmd == nil {
			t.Fatal("live tick should re-arm")
		}
	}
	if got := p.timer.Remaining(); got != 2*time.Minute-5*time.Second {
		t.Fatalf("remaining = %v, want 1m55s", got)
	}
}

func TestPomodoroStaleTickIgnored(t *testing.T) {
	p := newTestPomodoro(t)
	p, _ = p.update(press(" "))
	stale := tickMsg{id: p.ticker.id}

	// Adjusting restarts the interval.
	p, _ = p.update(press("+"))
	if p.timer.Remaining() != 3*time.Minute {
		t.Fatalf("remaining = %v, want 3m", p.timer.Remaining())
	}

	p, cmd := p.update(stale)
	if cmd != nil {
		t.Fatal("stale tick should not re-arm")
	}
	if p.timer.Remaining() != 3*time.Minute {
		t.Fatal("stale tick should not decrement")
	}
}

func TestPomodoroTickIgnoredWhenPaused(t *testing.T) {
	p := newTestPomodoro(t)
	p, _ = p.update(press(" "))
	p, _ = p.update(press(" "))

	p, cmd := p.update(tickMsg{id: p.ticker.id})
	if cmd != nil {
		t.Fatal("tick while paused should not re-arm")
	}
	if p.timer.Remaining() != 2*time.Minute {
		t.Fatal("tick while paused should not decrement")
	}
}

func TestPomodoroPresetKeys(t *testing.T) {
	tests := []struct {
		key    string
		preset pomodoro.Preset
		want   time.Duration
	}{
		{"s", pomodoro.PresetShortBreak, time.Minute},
		{"l", pomodoro.PresetLongBreak, 3 * time.Minute},
		{"f", pomodoro.PresetFocus, 2 * time.Minute},
	}
	p := newTestPomodoro(t)
	for _, tt := range tests {
		p, _ = p.update(press(tt.key))
		if p.timer.Preset != tt.preset {
			t.Errorf("%q: preset = %s, want %s", tt.key, p.timer.Preset, tt.preset)
		}
		if p.timer.Remaining() != tt.want {
			t.Errorf("%q: remaining = %v, want %v", tt.key, p.timer.Remaining(), tt.want)
		}
	}
}

func TestPomodoroAdjustKeys(t *testing.T) {
	p := newTestPomodoro(t)
	p, _ = p.update(press("s"))

	p, _ = p.update(press("+"))
	if p.timer.ShortBreakDuration != 2*time.Minute {
		t.Fatalf("short break = %v, want 2m", p.timer.ShortBreakDuration)
	}

	// ] always targets the work duration.
	p, _ = p.update(press("]"))
	if p.timer.WorkDuration != 3*time.Minute {
		t.Fatalf("work = %v, want 3m", p.timer.WorkDuration)
	}
	if p.timer.Remaining() != 2*time.Minute {
		t.Fatal("work adjust should not touch an active break")
	}

	for i := 0; i < 5; i++ {
		p, _ = p.update(press("["))
	}
	if p.timer.WorkDuration != time.Minute {
		t.Fatalf("work = %v, want the 1m floor", p.timer.WorkDuration)
	}
}

func TestPomodoroResetKey(t *testing.T) {
	p := newTestPomodoro(t)
	p, _ = p.update(press(" "))
	p, _ = p.update(press("l"))

	p, cmd := p.update(press("r"))
	if cmd != nil {
		t.Fatal("reset should not arm a tick")
	}
	if p.timer.Status != pomodoro.StatusIdle || p.timer.Preset != pomodoro.PresetFocus {
		t.Fatal("reset should rewind to an idle focus session")
	}
}

func TestPomodoroLogTransition(t *testing.T) {
	p := newTestPomodoro(t)
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := &pomodoro.Transition{
		From:      pomodoro.SessionWork,
		To:        pomodoro.SessionBreak,
		Finished:  pomodoro.PresetFocus,
		Preset:    pomodoro.PresetShortBreak,
		Completed: 1,
		Elapsed:   2 * time.Minute,
		At:        at,
	}

	msg := p.logTransition(tr)()
	logged, ok := msg.(sessionLoggedMsg)
	if !ok {
		t.Fatalf("got %T, want sessionLoggedMsg", msg)
	}
	if logged.total != 1 {
		t.Fatalf("total = %d, want 1", logged.total)
	}
	if logged.entry.Preset != "focus" || logged.entry.Duration != 120 {
		t.Fatalf("unexpected entry %+v", logged.entry)
	}

	p, _ = p.update(logged)
	if p.total != 1 {
		t.Fatal("pomodoro model should pick up the new total")
	}
}

func TestPomodoroSessionEndLogs(t *testing.T) {
	p := newTestPomodoro(t)
	p.ticker.interval = time.Millisecond
	p, _ = p.update(press("[")) // 1m focus
	p, _ = p.update(press(" "))

	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		p, cmd = p.update(tickMsg{id: p.ticker.id})
	}
	if p.timer.CurrentSession != pomodoro.SessionBreak {
		t.Fatal("focus session should have ended")
	}
	if cmd == nil {
		t.Fatal("transition should return commands")
	}

	msgs := cmd().(tea.BatchMsg)
	var logged bool
	for _, c := range msgs {
		if c == nil {
			continue
		}
		if _, ok := c().(sessionLoggedMsg); ok {
			logged = true
		}
	}
	if !logged {
		t.Fatal("transition should log the finished session")
	}
}

func TestTransitionText(t *testing.T) {
	work := &pomodoro.Transition{From: pomodoro.SessionWork, Preset: pomodoro.PresetLongBreak, Completed: 4}
	if got := transitionText(work); !strings.Contains(got, "#4") || !strings.Contains(got, "Long Break") {
		t.Fatalf("transitionText = %q", got)
	}
	brk := &pomodoro.Transition{From: pomodoro.SessionBreak}
	if got := transitionText(brk); !strings.Contains(got, "focus") {
		t.Fatalf("transitionText = %q", got)
	}
}

func TestPomodoroView(t *testing.T) {
	p := newTestPomodoro(t)
	p.setWidth(60)
	v := p.view()
	for _, want := range []string{"02:00", "READY", "Focus"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}

	p, _ = p.update(press(" "))
	if !strings.Contains(p.view(), "RUNNING") {
		t.Error("running view should say RUNNING")
	}
}

// ============================================================
// Tasks model
// ============================================================

func TestTasksNewOpensForm(t *testing.T) {
	m := newTasksModel(tasks.NewList())
	m, cmd := m.update(press("n"))
	if !m.formActive || m.form == nil {
		t.Fatal("n should open the new task form")
	}
	if cmd == nil {
		t.Fatal("form init should return a command")
	}

	m, _ = m.update(press("esc"))
	if m.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestTasksToggleAndDelete(t *testing.T) {
	l := tasks.NewList()
	l.Add("write report")
	l.Add("review PR")
	m := newTasksModel(l)

	m, _ = m.update(press("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	m, _ = m.update(press("x"))
	items := l.Items()
	if items[0].Completed || !items[1].Completed {
		t.Fatal("x should toggle only the selected task")
	}

	m, _ = m.update(press("enter"))
	if l.Items()[1].Completed {
		t.Fatal("enter should toggle back")
	}

	m, _ = m.update(press("d"))
	if l.Len() != 1 || l.Items()[0].Text != "write report" {
		t.Fatal("d should delete only the selected task")
	}
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want clamped to 0", m.cursor)
	}
}

func TestTasksKeysOnEmptyList(t *testing.T) {
	m := newTasksModel(tasks.NewList())
	m, _ = m.update(press("x"))
	m, _ = m.update(press("d"))
	m, _ = m.update(press("k"))
	if m.cursor != 0 {
		t.Fatal("cursor should stay at 0")
	}
}

func TestTasksView(t *testing.T) {
	l := tasks.NewList()
	m := newTasksModel(l)
	m.setSize(50, 20)
	if !strings.Contains(m.view(), "No tasks yet") {
		t.Fatal("empty view should prompt to add a task")
	}

	a, _ := l.Add("buy milk")
	l.Add("call mom")
	l.Toggle(a.ID)
	v := m.view()
	for _, want := range []string{"buy milk", "call mom", "1 left"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

// ============================================================
// Dashboard model
// ============================================================

func TestDashboardRoutesKeys(t *testing.T) {
	s := newTestStore(t)
	l := tasks.NewList()
	l.Add("first")
	d := newDashboardModel(s, shortDurations(), l)

	d, _ = d.update(press("s"))
	if d.pomodoro.timer.Preset != pomodoro.PresetShortBreak {
		t.Fatal("s should select the short break")
	}
	if l.Items()[0].Completed {
		t.Fatal("timer keys should not reach the task list")
	}

	d, _ = d.update(press("x"))
	if !l.Items()[0].Completed {
		t.Fatal("x should reach the task list")
	}

	d, _ = d.update(press("n"))
	if !d.formActive() {
		t.Fatal("n should open the task form")
	}
	d, _ = d.update(press("s"))
	if d.pomodoro.timer.Preset != pomodoro.PresetShortBreak || !d.formActive() {
		t.Fatal("keys should go to the open form")
	}
}

func TestDashboardLoadData(t *testing.T) {
	s := newTestStore(t)
	now := time.Now()
	s.LogSession("focus", 25*time.Minute, now)
	s.LogSession("short_break", 5*time.Minute, now)

	d := newDashboardModel(s, shortDurations(), tasks.NewList())
	msg := d.loadData()()
	d, _ = d.update(msg)

	if d.todayCount != 1 {
		t.Fatalf("todayCount = %d, want 1", d.todayCount)
	}
	if d.todayFocus != 1500 {
		t.Fatalf("todayFocus = %d, want 1500", d.todayFocus)
	}
	if len(d.recent) != 2 {
		t.Fatalf("recent = %d, want 2", len(d.recent))
	}
}

func TestPresetLabel(t *testing.T) {
	if presetLabel("long_break") != "Long Break" {
		t.Fatal("long_break should map to Long Break")
	}
	if presetLabel("other") != "other" {
		t.Fatal("unknown names pass through")
	}
}

// ============================================================
// Reports model
// ============================================================

func TestReportsDateRange(t *testing.T) {
	s := newTestStore(t)
	r := newReportsModel(s)
	r.now = func() time.Time { return time.Date(2026, 3, 5, 15, 0, 0, 0, time.UTC) } // Thursday

	from, to := r.dateRange()
	if !from.Equal(time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)) || !to.Equal(time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("daily range = %v..%v", from, to)
	}

	r.mode = reportWeekly
	from, to = r.dateRange()
	if from.Weekday() != time.Monday || !from.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("weekly start = %v", from)
	}
	if to.Sub(from) != 7*24*time.Hour {
		t.Fatal("weekly range should span 7 days")
	}

	r.offset = 1
	from, _ = r.dateRange()
	if !from.Equal(time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("previous week start = %v", from)
	}
}

func TestReportsRefresh(t *testing.T) {
	s := newTestStore(t)
	day := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	s.LogSession("focus", 25*time.Minute, day)
	s.LogSession("focus", 25*time.Minute, day.Add(time.Hour))

	r := newReportsModel(s)
	r.now = func() time.Time { return time.Date(2026, 3, 5, 15, 0, 0, 0, time.UTC) }
	r.setSize(100, 30)

	r, _ = r.update(r.refresh()())
	if len(r.counts) != 1 || r.counts[0].Count != 2 {
		t.Fatalf("counts = %+v", r.counts)
	}
	if !strings.Contains(r.view(), "2026-03-04") {
		t.Fatal("summary table should list the day")
	}
}

func TestReportsNavigation(t *testing.T) {
	r := newReportsModel(newTestStore(t))

	r, _ = r.update(tea.KeyMsg{Type: tea.KeyRight})
	if r.offset != 0 {
		t.Fatal("cannot navigate past today")
	}
	r, _ = r.update(tea.KeyMsg{Type: tea.KeyLeft})
	if r.offset != 1 {
		t.Fatalf("offset = %d, want 1", r.offset)
	}
	r, _ = r.update(press("enter"))
	if r.mode != reportWeekly || r.offset != 0 {
		t.Fatal("enter should switch to weekly and reset the offset")
	}
}

// ============================================================
// Settings model
// ============================================================

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"25", false},
		{" 5 ", false},
		{"1", false},
		{"0", true},
		{"-3", true},
		{"abc", true},
		{"", true},
	}
	for _, tt := range tests {
		err := validatePositive(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePositive(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestSettingsDurations(t *testing.T) {
	s := newSettingsModel(newTestStore(t))
	*s.work, *s.short, *s.long, *s.longEvery = "50", "10", "30", "3"

	d := s.durations()
	want := pomodoro.Durations{Work: 50 * time.Minute, ShortBreak: 10 * time.Minute, LongBreak: 30 * time.Minute, LongBreakEvery: 3}
	if d != want {
		t.Fatalf("durations = %+v, want %+v", d, want)
	}
}

func TestSettingsFormLoadsStoredValues(t *testing.T) {
	st := newTestStore(t)
	if err := st.SaveDurations(pomodoro.Durations{Work: 40 * time.Minute, ShortBreak: 8 * time.Minute, LongBreak: 20 * time.Minute, LongBreakEvery: 2}); err != nil {
		t.Fatal(err)
	}
	s := newSettingsModel(st)
	s, _ = s.update(press("enter"))
	if !s.formActive {
		t.Fatal("enter should open the form")
	}
	if *s.work != "40" || *s.short != "8" || *s.long != "20" || *s.longEvery != "2" {
		t.Fatalf("form values = %s/%s/%s/%s", *s.work, *s.short, *s.long, *s.longEvery)
	}
}

func TestFormatSettingValue(t *testing.T) {
	tests := []struct {
		key, val, want string
	}{
		{store.KeyWork, "1500", "25 min"},
		{store.KeyShortBreak, "300", "5 min"},
		{store.KeyLongBreak, "900", "15 min"},
		{store.KeyLongBreakEvery, "4", "4"},
		{store.KeyWork, "invalid", "invalid"},
	}
	for _, tt := range tests {
		got := formatSettingValue(tt.key, tt.val)
		if got != tt.want {
			t.Errorf("formatSettingValue(%q, %q) = %q, want %q", tt.key, tt.val, got, tt.want)
		}
	}
}

// ============================================================
// App
// ============================================================

func TestAppViewSwitching(t *testing.T) {
	a := newTestApp(t)
	if a.activeView != viewTimer {
		t.Fatal("app should open on the timer")
	}

	a, _ = update(t, a, press("2"))
	if a.activeView != viewReports {
		t.Fatal("2 should open reports")
	}
	a, _ = update(t, a, press("tab"))
	if a.activeView != viewSettings {
		t.Fatal("tab should advance to settings")
	}
	a, _ = update(t, a, press("tab"))
	if a.activeView != viewTimer {
		t.Fatal("tab should wrap to the timer")
	}
}

func TestAppTimerRunsOnOtherTabs(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, press(" "))
	a, _ = update(t, a, press("2"))

	id := a.dashboard.pomodoro.ticker.id
	a, cmd := update(t, a, tickMsg{id: id})
	if cmd == nil {
		t.Fatal("tick should re-arm while on another tab")
	}
	if got := a.dashboard.pomodoro.timer.Remaining(); got != 2*time.Minute-time.Second {
		t.Fatalf("remaining = %v, want 1m59s", got)
	}
	if !strings.Contains(a.View(), "01:59") {
		t.Fatal("footer should show the running countdown")
	}
}

func TestAppSettingsSavedAppliesDurations(t *testing.T) {
	a := newTestApp(t)
	d := shortDurations()
	d.Work = 10 * time.Minute

	a, _ = update(t, a, settingsSavedMsg{durations: d})
	if a.dashboard.pomodoro.timer.Remaining() != 10*time.Minute {
		t.Fatal("idle timer should pick up the new focus length")
	}
	if a.status != "Settings saved" {
		t.Fatalf("status = %q", a.status)
	}
}

func TestAppStatusClearsOnNextKey(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, statusMsg{text: "boom", isError: true})
	if a.status != "boom" || !a.statusError {
		t.Fatal("status should be set")
	}

	a, _ = update(t, a, press(" "))
	if a.status != "" || a.statusError {
		t.Fatal("status should clear on the next action")
	}
}

func TestAppHelpToggle(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, press("?"))
	if !a.showHelp || !strings.Contains(a.View(), "Pomodoro Technique") {
		t.Fatal("? should show the technique help")
	}
	a, _ = update(t, a, press("?"))
	if a.showHelp {
		t.Fatal("? should close the help")
	}
}

func TestAppExport(t *testing.T) {
	a := newTestApp(t)
	if _, err := a.store.LogSession("focus", 25*time.Minute, time.Now()); err != nil {
		t.Fatal(err)
	}

	a, _ = update(t, a, press("e"))
	if !a.exportPicking {
		t.Fatal("e should open the export picker")
	}
	a, _ = update(t, a, press("j"))
	a, _ = update(t, a, press("j"))
	a, _ = update(t, a, press("j"))
	if a.exportCursor != 2 {
		t.Fatalf("cursor = %d, want 2", a.exportCursor)
	}

	a, cmd := update(t, a, press("enter"))
	if a.exportPicking || cmd == nil {
		t.Fatal("enter should close the picker and export")
	}
	done, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatal("export should succeed")
	}
	if filepath.Ext(done.path) != ".yaml" || filepath.Dir(done.path) != a.exportDir {
		t.Fatalf("path = %q", done.path)
	}
	data, err := os.ReadFile(done.path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "focus") {
		t.Fatal("export should contain the logged session")
	}

	a, _ = update(t, a, done)
	if !strings.HasPrefix(a.status, "Exported to ") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t)
	_, cmd := update(t, a, press("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should return tea.Quit")
	}
}

// ============================================================
// Helper functions
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{time.Minute, "00:01:00"},
		{time.Hour + time.Minute + time.Second, "01:01:01"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := formatSeconds(61); got != "00:01:01" {
		t.Fatalf("formatSeconds(61) = %q", got)
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "0.0h"},
		{3600, "1.0h"},
		{5400, "1.5h"},
	}
	for _, tt := range tests {
		got := formatHours(tt.secs)
		if got != tt.want {
			t.Errorf("formatHours(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestViewNames(t *testing.T) {
	expected := []string{"Timer", "Reports", "Settings"}
	if len(viewNames) != len(expected) {
		t.Fatalf("expected %d view names, got %d", len(expected), len(viewNames))
	}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}
