package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/yllada/region-switcher/notify"
)

// toast is one notification on screen.
type toast struct {
	ID      string
	Kind    notify.Kind
	Message string
}

// toastExpiredMsg removes the toast with the given ID.
type toastExpiredMsg struct{ ID string }

// toastStack keeps the newest toasts, oldest first.
type toastStack struct {
	items []toast
	limit int
}

func newToastStack(limit int) toastStack {
	if limit < 1 {
		limit = 1
	}
	return toastStack{limit: limit}
}

// Push adds n and returns a command that expires it after d.
func (s *toastStack) Push(n notify.Notification, d time.Duration) tea.Cmd {
	t := toast{ID: uuid.NewString(), Kind: n.Kind, Message: n.Message}

	s.items = append(s.items, t)
	if over := len(s.items) - s.limit; over > 0 {
		s.items = append([]toast(nil), s.items[over:]...)
	}

	id := t.ID
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

// Remove drops the toast with the given ID. Unknown IDs are ignored.
func (s *toastStack) Remove(id string) {
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return
		}
	}
}

// DismissKind drops every toast of kind k.
func (s *toastStack) DismissKind(k notify.Kind) {
	kept := s.items[:0:0]
	for _, t := range s.items {
		if t.Kind != k {
			kept = append(kept, t)
		}
	}
	s.items = kept
}

// Items returns the toasts, oldest first.
func (s toastStack) Items() []toast {
	return s.items
}

// Len returns the number of toasts on screen.
func (s toastStack) Len() int {
	return len(s.items)
}

// truncate shortens s to width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
