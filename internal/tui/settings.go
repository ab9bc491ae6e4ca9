package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/pomodoro"
	"github.com/sadopc/pomo/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	work      *string
	short     *string
	long      *string
	longEvery *string
}

func newSettingsModel(s *store.Store) settingsModel {
	w, sb, lb, le := "", "", "", ""
	return settingsModel{
		store:     s,
		work:      &w,
		short:     &sb,
		long:      &lb,
		longEvery: &le,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.store.GetAllSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error loading settings: %v", err), isError: true}
		}
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	d := s.store.Durations(pomodoro.DefaultDurations())
	*s.work = strconv.Itoa(int(d.Work / time.Minute))
	*s.short = strconv.Itoa(int(d.ShortBreak / time.Minute))
	*s.long = strconv.Itoa(int(d.LongBreak / time.Minute))
	*s.longEvery = strconv.Itoa(d.LongBreakEvery)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus (min)").Value(s.work).Validate(validatePositive),
			huh.NewInput().Title("Short break (min)").Value(s.short).Validate(validatePositive),
			huh.NewInput().Title("Long break (min)").Value(s.long).Validate(validatePositive),
			huh.NewInput().Title("Pomodoros before long break").Value(s.longEvery).Validate(validatePositive),
		).Title("Pomodoro"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func validatePositive(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Back) {
		s.formActive = false
		s.form = nil
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		d := s.durations()
		if err := s.store.SaveDurations(d); err != nil {
			return s, errorCmd("Error saving settings: %v", err)
		}
		return s, tea.Batch(
			s.refresh(),
			func() tea.Msg { return settingsSavedMsg{durations: d} },
		)
	}

	return s, cmd
}

// durations converts the form values. They have already been validated.
func (s settingsModel) durations() pomodoro.Durations {
	return pomodoro.Durations{
		Work:           time.Duration(atoi(*s.work)) * time.Minute,
		ShortBreak:     time.Duration(atoi(*s.short)) * time.Minute,
		LongBreak:      time.Duration(atoi(*s.long)) * time.Minute,
		LongBreakEvery: atoi(*s.longEvery),
	}
}

func atoi(v string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(v))
	return n
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(28).Render(settingLabel(setting.Key))
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func settingLabel(k string) string {
	switch k {
	case store.KeyWork:
		return "Focus"
	case store.KeyShortBreak:
		return "Short break"
	case store.KeyLongBreak:
		return "Long break"
	case store.KeyLongBreakEvery:
		return "Pomodoros before long break"
	}
	return k
}

func formatSettingValue(k, v string) string {
	switch k {
	case store.KeyWork, store.KeyShortBreak, store.KeyLongBreak:
		if secs, err := strconv.Atoi(v); err == nil {
			return fmt.Sprintf("%d min", secs/60)
		}
	}
	return v
}
