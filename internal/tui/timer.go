package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ticker owns the one-second tick chain. Each restart bumps the generation,
// so a tick already in flight from an earlier chain is recognised as stale
// and dropped instead of producing a second interval.
type ticker struct {
	id       int
	interval time.Duration
}

func newTicker() ticker {
	return ticker{interval: time.Second}
}

// restart invalidates any pending tick and, when running, schedules a new one.
func (t *ticker) restart(running bool) tea.Cmd {
	t.id++
	if !running {
		return nil
	}
	return t.next()
}

// next schedules the following tick of the current chain.
func (t ticker) next() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return tickMsg{id: id, at: at}
	})
}

// current reports whether msg belongs to the live chain.
func (t ticker) current(msg tickMsg) bool {
	return msg.id == t.id
}
