package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/pomodoro"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/tasks"
)

// sideBySideWidth is the terminal width above which the timer and task
// panels are laid out next to each other.
const sideBySideWidth = 100

// dashboardModel is the timer tab: the pomodoro panel, the task list and
// today's log.
type dashboardModel struct {
	store  *store.Store
	width  int
	height int

	pomodoro pomodoroModel
	tasks    tasksModel

	todayCount int
	todayFocus int64
	recent     []store.LogEntry
}

func newDashboardModel(s *store.Store, d pomodoro.Durations, l *tasks.List) dashboardModel {
	return dashboardModel{
		store:    s,
		pomodoro: newPomodoroModel(s, d),
		tasks:    newTasksModel(l),
	}
}

func (d dashboardModel) Init() tea.Cmd {
	return tea.Batch(d.loadData(), d.pomodoro.loadTotals())
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	left, right := d.columns()
	d.pomodoro.setWidth(left)
	d.tasks.setSize(right, h)
}

// columns returns the panel widths for the timer and task list.
func (d dashboardModel) columns() (int, int) {
	w := d.width - 4
	if d.width < sideBySideWidth {
		return w, w
	}
	left := w * 3 / 5
	return left, w - left - 2
}

type dashboardDataMsg struct {
	todayCount int
	todayFocus int64
	recent     []store.LogEntry
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		count, secs, err := d.store.CountFocus(dayStart, dayStart.Add(24*time.Hour))
		if err != nil {
			log.Printf("count today: %v", err)
		}
		recent, err := d.store.ListLog(store.LogFilter{Limit: 5})
		if err != nil {
			log.Printf("list recent: %v", err)
		}
		return dashboardDataMsg{
			todayCount: count,
			todayFocus: secs,
			recent:     recent,
		}
	}
}

func (d dashboardModel) formActive() bool { return d.tasks.formActive }

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.todayCount = msg.todayCount
		d.todayFocus = msg.todayFocus
		d.recent = msg.recent
		return d, nil

	case tickMsg, totalsMsg:
		var cmd tea.Cmd
		d.pomodoro, cmd = d.pomodoro.update(msg)
		return d, cmd

	case sessionLoggedMsg:
		var cmd tea.Cmd
		d.pomodoro, cmd = d.pomodoro.update(msg)
		return d, tea.Batch(cmd, d.loadData())

	case tea.KeyMsg:
		if d.tasks.formActive {
			var cmd tea.Cmd
			d.tasks, cmd = d.tasks.update(msg)
			return d, cmd
		}

		var cmd tea.Cmd
		if handlesTimerKey(msg) {
			d.pomodoro, cmd = d.pomodoro.update(msg)
		} else {
			d.tasks, cmd = d.tasks.update(msg)
		}
		return d, cmd
	}

	// Forms need non-key messages too (cursor blink, etc.).
	if d.tasks.formActive {
		var cmd tea.Cmd
		d.tasks, cmd = d.tasks.update(msg)
		return d, cmd
	}
	return d, nil
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	timerPanel := d.pomodoro.view()
	taskPanel := d.tasks.view()

	var top string
	if d.width < sideBySideWidth {
		top = lipgloss.JoinVertical(lipgloss.Left, timerPanel, taskPanel)
	} else {
		top = lipgloss.JoinHorizontal(lipgloss.Top, timerPanel, "  ", taskPanel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, d.renderTodayPanel(d.width-4))
}

func (d dashboardModel) renderTodayPanel(w int) string {
	title := titleStyle.Render("Today")
	summary := highlightStyle.Render(fmt.Sprintf("%d pomodoros · %s focused", d.todayCount, formatSeconds(d.todayFocus)))
	header := fmt.Sprintf("%s  %s", title, summary)

	if len(d.recent) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			mutedStyle.Render("No sessions logged yet"),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, header)
	for _, e := range d.recent {
		dot := lipgloss.NewStyle().Foreground(presetColor(e.Preset)).Render("●")
		row := fmt.Sprintf("  %s %s  %-12s %s",
			dot,
			e.CompletedAt.Local().Format("Jan 02 15:04"),
			presetLabel(e.Preset),
			formatSeconds(e.Duration),
		)
		rows = append(rows, row)
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// presetLabel turns a stored preset name into its display label.
func presetLabel(name string) string {
	for _, p := range presetOrder {
		if p.String() == name {
			return p.Label()
		}
	}
	return name
}
