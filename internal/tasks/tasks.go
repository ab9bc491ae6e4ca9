// Package tasks is the in-memory to-do list shown beside the timer.
package tasks

import (
	"strings"
	"time"
)

type Task struct {
	ID        int64 // creation time in Unix milliseconds
	Text      string
	Completed bool
	CreatedAt time.Time
}

// List keeps tasks in insertion order. It is owned by a single goroutine.
type List struct {
	items  []Task
	lastID int64
	now    func() time.Time
}

func NewList() *List {
	return &List{now: time.Now}
}

// WithClock overrides the clock used to stamp new tasks.
func (l *List) WithClock(now func() time.Time) *List {
	l.now = now
	return l
}

// Add appends a task with the trimmed text. Blank text is ignored and
// reported as false.
func (l *List) Add(text string) (*Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	now := l.now()
	id := now.UnixMilli()
	// Two adds within the same millisecond would otherwise share an ID.
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	t := Task{
		ID:        id,
		Text:      text,
		CreatedAt: now,
	}
	l.items = append(l.items, t)
	return &t, true
}

// Toggle flips the completed flag of the task with id.
func (l *List) Toggle(id int64) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items[i].Completed = !l.items[i].Completed
	return true
}

// Delete removes the task with id.
func (l *List) Delete(id int64) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

func (l *List) Get(id int64) (Task, bool) {
	i := l.index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.items[i], true
}

func (l *List) index(id int64) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Items returns a copy of the list.
func (l *List) Items() []Task {
	out := make([]Task, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int { return len(l.items) }

// Pending counts tasks not yet completed.
func (l *List) Pending() int {
	n := 0
	for _, t := range l.items {
		if !t.Completed {
			n++
		}
	}
	return n
}
