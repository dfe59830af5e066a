// Package toast keeps a short stack of self-dismissing notifications.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/msgbox/theme"
)

type Variant string

const (
	Default Variant = ""
	Success Variant = "success"
	Info    Variant = "info"
	Warning Variant = "warning"
	Error   Variant = "error"
)

// Icon returns the glyph drawn before a toast's text.
func (v Variant) Icon() string {
	switch v {
	case Info:
		return "ℹ"
	case Success:
		return "✓"
	case Warning:
		return "!"
	case Error:
		return "×"
	}
	return ""
}

type Toast struct {
	ID      int
	Variant Variant
	Text    string
}

// expiredMsg is scheduled per toast; ids that are already gone are no-ops.
type expiredMsg struct{ id int }

// Stack holds at most max toasts, newest last.
type Stack struct {
	max   int
	ttl   time.Duration
	seq   int
	items []Toast
}

func New(max int, ttl time.Duration) *Stack {
	if max <= 0 {
		max = 5
	}
	return &Stack{max: max, ttl: ttl}
}

// Push shows a toast and schedules its dismissal. The oldest toast is
// dropped when the stack is full.
func (s *Stack) Push(v Variant, text string) tea.Cmd {
	s.seq++
	id := s.seq
	s.items = append(s.items, Toast{ID: id, Variant: v, Text: text})
	if over := len(s.items) - s.max; over > 0 {
		s.items = append(s.items[:0:0], s.items[over:]...)
	}
	if s.ttl <= 0 {
		return nil
	}
	return tea.Tick(s.ttl, func(time.Time) tea.Msg { return expiredMsg{id: id} })
}

// Update handles expiry messages and reports whether msg was one.
func (s *Stack) Update(msg tea.Msg) bool {
	exp, ok := msg.(expiredMsg)
	if !ok {
		return false
	}
	s.Dismiss(exp.id)
	return true
}

func (s *Stack) Dismiss(id int) {
	kept := s.items[:0:0]
	for _, t := range s.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.items = kept
}

func (s *Stack) Items() []Toast { return append([]Toast(nil), s.items...) }

func (s *Stack) Len() int { return len(s.items) }

// View renders the toasts as one block, newest at the bottom, each line
// at most width cells wide.
func (s *Stack) View(p theme.Palette, width int) string {
	if len(s.items) == 0 {
		return ""
	}
	if width < 8 {
		width = 8
	}
	lines := make([]string, 0, len(s.items))
	for _, t := range s.items {
		text := t.Text
		if icon := t.Variant.Icon(); icon != "" {
			text = icon + " " + text
		}
		text = truncate.StringWithTail(text, uint(width-4), "…")
		bg := p.Surface
		fg := p.Text
		if t.Variant != Default {
			bg = p.Accent(string(t.Variant))
			fg = p.OnColor
		}
		lines = append(lines, lipgloss.NewStyle().Background(bg).Foreground(fg).Padding(0, 2).Render(text))
	}
	return strings.Join(lines, "\n")
}
