package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/pomodoro"
	"github.com/sadopc/pomo/internal/store"
)

var presetOrder = []pomodoro.Preset{
	pomodoro.PresetFocus,
	pomodoro.PresetShortBreak,
	pomodoro.PresetLongBreak,
}

type pomodoroModel struct {
	store  *store.Store
	timer  *pomodoro.Timer
	ticker ticker
	bar    progress.Model
	width  int

	bellOut io.Writer

	// all-time focus sessions from the log
	total int
}

func newPomodoroModel(s *store.Store, d pomodoro.Durations) pomodoroModel {
	return pomodoroModel{
		store:  s,
		timer:  pomodoro.New(d),
		ticker: newTicker(),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),

		bellOut: os.Stderr,
	}
}

func (p *pomodoroModel) setWidth(w int) {
	p.width = w
	p.bar.Width = max(10, w-10)
}

func (p pomodoroModel) loadTotals() tea.Cmd {
	return func() tea.Msg {
		n, err := p.store.TotalFocus()
		if err != nil {
			log.Printf("load totals: %v", err)
		}
		return totalsMsg{total: n}
	}
}

func (p pomodoroModel) update(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !p.ticker.current(msg) || !p.timer.Running() {
			return p, nil
		}
		tr, switched := p.timer.Tick()
		next := p.ticker.next()
		if !switched {
			return p, next
		}
		return p, tea.Batch(next, p.logTransition(tr), statusCmd(transitionText(tr)), p.bell())

	case totalsMsg:
		p.total = msg.total
		return p, nil

	case sessionLoggedMsg:
		p.total = msg.total
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

var timerKeys = []key.Binding{
	keys.StartPause, keys.Reset,
	keys.Focus, keys.ShortBreak, keys.LongBreak,
	keys.Increase, keys.Decrease, keys.WorkUp, keys.WorkDown,
}

// handlesTimerKey reports whether msg is one of the timer controls.
func handlesTimerKey(msg tea.KeyMsg) bool {
	return key.Matches(msg, timerKeys...)
}

func (p pomodoroModel) handleKey(msg tea.KeyMsg) (pomodoroModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.StartPause):
		p.timer.StartPause()
	case key.Matches(msg, keys.Reset):
		p.timer.Reset()
	case key.Matches(msg, keys.Focus):
		p.timer.Select(pomodoro.PresetFocus)
	case key.Matches(msg, keys.ShortBreak):
		p.timer.Select(pomodoro.PresetShortBreak)
	case key.Matches(msg, keys.LongBreak):
		p.timer.Select(pomodoro.PresetLongBreak)
	case key.Matches(msg, keys.Increase):
		p.timer.Increment(p.timer.Preset)
	case key.Matches(msg, keys.Decrease):
		p.timer.Decrement(p.timer.Preset)
	case key.Matches(msg, keys.WorkUp):
		p.timer.Increment(pomodoro.PresetFocus)
	case key.Matches(msg, keys.WorkDown):
		p.timer.Decrement(pomodoro.PresetFocus)
	default:
		return p, nil
	}
	// Every control restarts the interval so at most one tick chain is live.
	return p, p.ticker.restart(p.timer.Running())
}

// applyDurations installs new defaults from the settings view.
func (p pomodoroModel) applyDurations(d pomodoro.Durations) (pomodoroModel, tea.Cmd) {
	p.timer.Apply(d)
	return p, p.ticker.restart(p.timer.Running())
}

func (p pomodoroModel) logTransition(tr *pomodoro.Transition) tea.Cmd {
	s := p.store
	return func() tea.Msg {
		entry, err := s.LogSession(tr.Finished.String(), tr.Elapsed, tr.At)
		if err != nil {
			log.Printf("log session: %v", err)
			return statusMsg{text: fmt.Sprintf("Error saving session: %v", err), isError: true}
		}
		total, err := s.TotalFocus()
		if err != nil {
			log.Printf("load totals: %v", err)
		}
		return sessionLoggedMsg{entry: entry, total: total}
	}
}

// bell rings the terminal bell once.
func (p pomodoroModel) bell() tea.Cmd {
	out := p.bellOut
	if out == nil {
		return nil
	}
	return func() tea.Msg {
		fmt.Fprint(out, "\a")
		return nil
	}
}

func transitionText(tr *pomodoro.Transition) string {
	if tr.From == pomodoro.SessionWork {
		return fmt.Sprintf("Pomodoro #%d done. %s time!", tr.Completed, tr.Preset.Label())
	}
	return "Break over. Back to focus!"
}

func (p pomodoroModel) view() string {
	w := p.width
	t := p.timer
	accent := lipgloss.NewStyle().Foreground(presetColor(t.Preset.String())).Bold(true)

	title := titleStyle.Render("Pomodoro Timer")
	presets := p.renderPresets()

	timeDisplay := timerStyle.Foreground(presetColor(t.Preset.String())).
		Width(max(10, w-6)).
		Render(pomodoro.FormatClock(t.Remaining()))

	var status string
	switch t.Status {
	case pomodoro.StatusRunning:
		status = successStyle.Render("●  RUNNING")
	case pomodoro.StatusPaused:
		status = warningStyle.Render("⏸  PAUSED")
	default:
		status = mutedStyle.Render("■  READY")
	}

	durations := mutedStyle.Render(fmt.Sprintf("focus %s · short %s · long %s",
		pomodoro.FormatClock(t.WorkDuration),
		pomodoro.FormatClock(t.ShortBreakDuration),
		pomodoro.FormatClock(t.LongBreakDuration),
	))

	counter := fmt.Sprintf("%s  %s",
		p.renderCycle(),
		mutedStyle.Render(fmt.Sprintf("🍅 total %d", p.total)),
	)

	var controls string
	if t.Running() {
		controls = mutedStyle.Render("space: pause  r: reset  +/-: adjust  f/s/l: preset")
	} else {
		controls = mutedStyle.Render("space: start  r: reset  +/-: adjust  f/s/l: preset")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		presets,
		"",
		accent.Render(strings.ToUpper(t.Preset.Label())),
		timeDisplay,
		status,
		"",
		p.bar.ViewAs(t.Progress()),
		"",
		durations,
		counter,
		"",
		controls,
	)

	style := panelStyle
	if t.Running() {
		style = activePanelStyle
	}
	return style.Width(w).Render(content)
}

func (p pomodoroModel) renderPresets() string {
	var tabs []string
	for _, preset := range presetOrder {
		if preset == p.timer.Preset {
			tabs = append(tabs, activeTabStyle.
				Foreground(presetColor(preset.String())).
				BorderForeground(presetColor(preset.String())).
				Render(preset.Label()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(preset.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

// renderCycle shows progress towards the next long break.
func (p pomodoroModel) renderCycle() string {
	every := p.timer.LongBreakEvery
	done := p.timer.CompletedSessions % every
	var parts []string
	for i := 0; i < every; i++ {
		if i < done {
			parts = append(parts, successStyle.Render("●"))
		} else if i == done && p.timer.CurrentSession == pomodoro.SessionWork && p.timer.Running() {
			parts = append(parts, lipgloss.NewStyle().Foreground(colorFocus).Render("◐"))
		} else {
			parts = append(parts, mutedStyle.Render("○"))
		}
	}
	counter := mutedStyle.Render(fmt.Sprintf("  %d done", p.timer.CompletedSessions))
	return strings.Join(parts, " ") + counter
}
