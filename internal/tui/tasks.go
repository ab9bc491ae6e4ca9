package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/tasks"
)

type tasksModel struct {
	list   *tasks.List
	width  int
	height int
	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointer (survives value copies)
	formText *string
}

func newTasksModel(l *tasks.List) tasksModel {
	text := ""
	return tasksModel{
		list:     l,
		formText: &text,
	}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	items := m.list.Items()
	switch {
	case key.Matches(km, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(km, keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(km, keys.New):
		return m.showNewTaskForm()
	case key.Matches(km, keys.Toggle):
		if len(items) > 0 {
			m.list.Toggle(items[m.cursor].ID)
		}
	case key.Matches(km, keys.Delete):
		if len(items) > 0 {
			m.list.Delete(items[m.cursor].ID)
			m.clampCursor()
			return m, statusCmd("Task deleted")
		}
	}
	return m, nil
}

func (m *tasksModel) clampCursor() {
	if n := m.list.Len(); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

func (m tasksModel) showNewTaskForm() (tasksModel, tea.Cmd) {
	*m.formText = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Add a new task").Placeholder("What needs doing?").Value(m.formText),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Back) {
		m.formActive = false
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		if _, ok := m.list.Add(*m.formText); !ok {
			return m, statusCmd("Task text is empty")
		}
		m.cursor = m.list.Len() - 1
		return m, nil
	}

	return m, cmd
}

func (m tasksModel) view() string {
	w := m.width

	if m.formActive && m.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("New Task"),
			"",
			m.form.View(),
		)
		return activePanelStyle.Width(w).Render(content)
	}

	items := m.list.Items()
	title := titleStyle.Render(fmt.Sprintf("Tasks %s", mutedStyle.Render(fmt.Sprintf("(%d left)", m.list.Pending()))))

	if len(items) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No tasks yet. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, t := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		check := "[ ]"
		text := normalItemStyle.Render(t.Text)
		if t.Completed {
			check = successStyle.Render("[✓]")
			text = doneTaskStyle.Render(t.Text)
		} else if i == m.cursor {
			text = selectedItemStyle.Render(t.Text)
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, check, text))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  x: done/undo  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
