package dialogs

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/andareed/msgbox/theme"
)

const (
	closeGlyph = "[×]"
	// cascade offsets for dialogs stacked behind the focused one
	cascadeX = 2
	cascadeY = 1
)

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return r.w > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) offset(dx, dy int) rect { return rect{r.x + dx, r.y + dy, r.w, r.h} }

// hitMap records where the focused dialog's controls were last drawn, in
// screen coordinates.
type hitMap struct {
	id      string
	frame   rect
	close   rect
	cancel  rect
	confirm rect
}

// renderBox draws one dialog. Control rects are relative to the box origin.
func (m *Manager) renderBox(b *box, p theme.Palette, maxW int, focused bool) (string, hitMap) {
	d := b.desc
	accent := p.Accent(string(d.Visual))
	if d.Visual == VisualNone {
		accent = p.Primary
	}

	width := d.MinWidth
	if w := lipgloss.Width(d.Content) + 8; w > width {
		width = w
	}
	if w := lipgloss.Width(d.Title) + 12; w > width {
		width = w
	}
	if maxW > 0 && width > maxW-2 {
		width = maxW - 2
	}
	if width < 20 {
		width = 20
	}
	inner := width - 4 // Padding(1, 2)

	var hits hitMap
	var lines []string

	// title row
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Text).Render(ansi.Truncate(d.Title, inner-4, "…"))
	if d.ShowCloseButton {
		closeStyle := lipgloss.NewStyle().Foreground(p.Muted)
		if b.loading {
			closeStyle = closeStyle.Faint(true)
		}
		gap := inner - lipgloss.Width(title) - lipgloss.Width(closeGlyph)
		if gap < 1 {
			gap = 1
		}
		title += strings.Repeat(" ", gap) + closeStyle.Render(closeGlyph)
		hits.close = rect{x: inner - lipgloss.Width(closeGlyph), y: 0, w: lipgloss.Width(closeGlyph), h: 1}
	}
	lines = append(lines, title, "")

	// icon + content
	body := d.Content
	if icon := IconFor(d); icon != "" {
		iconStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
		text := lipgloss.NewStyle().Width(inner - lipgloss.Width(icon) - 1).Foreground(p.Text).Render(body)
		body = lipgloss.JoinHorizontal(lipgloss.Top, iconStyle.Render(icon)+" ", text)
	} else {
		body = lipgloss.NewStyle().Width(inner).Foreground(p.Text).Render(body)
	}
	if d.Content != "" || IconFor(d) != "" {
		lines = append(lines, strings.Split(body, "\n")...)
	}

	// input block
	if b.hasInput() {
		lines = append(lines, "")
		if d.Input.Label != "" {
			labelStyle := lipgloss.NewStyle().Foreground(p.Muted)
			if b.errMsg != "" {
				labelStyle = labelStyle.Foreground(p.Error)
			}
			lines = append(lines, labelStyle.Render(d.Input.Label))
		}
		b.input.Width = inner - lipgloss.Width(b.input.Prompt) - 1
		field := b.input.View()
		underline := p.Muted
		if b.errMsg != "" {
			underline = p.Error
		} else if b.focus == focusInput && focused {
			underline = accent
		}
		lines = append(lines, field, lipgloss.NewStyle().Foreground(underline).Render(strings.Repeat("─", inner)))
		if b.errMsg != "" {
			lines = append(lines, lipgloss.NewStyle().Foreground(p.Error).Render(ansi.Truncate(b.errMsg, inner, "…")))
		}
	}

	// buttons
	if d.ShowCancelButton || d.ShowConfirmButton {
		lines = append(lines, "")
		row, cancelX, confirmX := m.renderButtons(b, p, focused)
		pad := inner - lipgloss.Width(row)
		if pad < 0 {
			pad = 0
		}
		y := len(lines)
		lines = append(lines, strings.Repeat(" ", pad)+row)
		if d.ShowCancelButton {
			hits.cancel = rect{x: pad + cancelX.x, y: y, w: cancelX.w, h: 1}
		}
		if d.ShowConfirmButton {
			hits.confirm = rect{x: pad + confirmX.x, y: y, w: confirmX.w, h: 1}
		}
	}

	border := p.Border
	if focused {
		border = accent
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(width)
	out := frame.Render(strings.Join(lines, "\n"))

	// content starts after the border (1) and padding (2 across, 1 down)
	hits.close = hits.close.offset(3, 2)
	hits.cancel = hits.cancel.offset(3, 2)
	hits.confirm = hits.confirm.offset(3, 2)
	hits.frame = rect{w: lipgloss.Width(out), h: lipgloss.Height(out)}
	hits.id = d.ID
	return out, hits
}

func (m *Manager) renderButtons(b *box, p theme.Palette, focused bool) (string, rect, rect) {
	d := b.desc
	accent := p.Accent(d.ConfirmColor)

	base := lipgloss.NewStyle().Padding(0, 1)
	var parts []string
	var cancelR, confirmR rect
	x := 0

	if d.ShowCancelButton {
		label := d.CancelText
		if label == "" {
			label = m.tr.T("dialog.action.cancel")
		}
		st := base.Foreground(accent)
		if b.loading {
			st = st.Faint(true)
		} else if focused && b.focus == focusCancel {
			st = st.Underline(true).Bold(true)
		}
		s := st.Render(label)
		cancelR = rect{x: x, w: lipgloss.Width(s), h: 1}
		x += cancelR.w + 1
		parts = append(parts, s)
	}
	if d.ShowConfirmButton {
		label := d.ConfirmText
		if label == "" {
			label = m.tr.T("dialog.action.confirm")
		}
		if b.loading {
			if d.ConfirmLoadingText != "" {
				label = d.ConfirmLoadingText
			}
			label = b.spinner.View() + " " + label
		}
		st := base.Background(accent).Foreground(p.OnColor)
		if b.loading {
			st = st.Faint(true)
		} else if focused && b.focus == focusConfirm {
			st = st.Underline(true).Bold(true)
		}
		s := st.Render(label)
		confirmR = rect{x: x, w: lipgloss.Width(s), h: 1}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), cancelR, confirmR
}

// View draws the queued dialogs over background: the page is dimmed, the
// dialogs behind the focused one are cascaded, and the focused one is
// centered on top.
func (m *Manager) View(background string) string {
	if len(m.queue) == 0 {
		m.hits = hitMap{}
		return background
	}
	p := m.palette()
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = lipgloss.Width(background), lipgloss.Height(background)
	}

	canvas := backdrop(background, lipgloss.NewStyle().Foreground(p.Muted).Faint(true), w, h)

	fi := m.index(m.focus)
	if fi < 0 {
		fi = len(m.queue) - 1
	}
	focusedView, hits := m.renderBox(m.queue[fi].box, p, w, true)
	ox := (w - hits.frame.w) / 2
	oy := (h - hits.frame.h) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}

	for i, e := range m.queue {
		if i == fi {
			continue
		}
		view, _ := m.renderBox(e.box, p, w, false)
		dx, dy := (i-fi)*cascadeX, (i-fi)*cascadeY
		canvas = Overlay(canvas, view, clamp(ox+dx, 0, w-1), clamp(oy+dy, 0, h-1), w, h)
	}
	canvas = Overlay(canvas, focusedView, ox, oy, w, h)

	hint := m.tr.T("dialog.hint.idle")
	if m.queue[fi].box.loading {
		hint = m.tr.T("dialog.hint.loading")
	}
	if len(m.queue) > 1 {
		hint += " · " + m.tr.T("dialog.hint.stack", "count", strconv.Itoa(len(m.queue)))
	}
	hint = lipgloss.NewStyle().Foreground(p.Muted).Render(ansi.Truncate(hint, w, "…"))
	canvas = Overlay(canvas, hint, clamp((w-lipgloss.Width(hint))/2, 0, w-1), clamp(oy+hits.frame.h, 0, h-1), w, h)

	m.hits = hits
	m.hits.frame = hits.frame.offset(ox, oy)
	m.hits.close = hits.close.offset(ox, oy)
	m.hits.cancel = hits.cancel.offset(ox, oy)
	m.hits.confirm = hits.confirm.offset(ox, oy)
	return canvas
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// handleMouse maps a left press on the focused dialog to its action. A press
// outside the box is a backdrop click.
func (m *Manager) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if len(m.queue) == 0 || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	e := m.entry(m.hits.id)
	if e == nil || e.desc.ID != m.focus || e.box.loading {
		return nil
	}
	x, y := msg.X, msg.Y
	switch {
	case m.hits.close.contains(x, y):
		return m.trigger(e, intentClose)
	case m.hits.cancel.contains(x, y):
		return m.trigger(e, intentCancel)
	case m.hits.confirm.contains(x, y):
		return m.trigger(e, intentConfirm)
	case m.hits.frame.contains(x, y):
		return nil
	}
	if e.desc.CloseOnBackdrop {
		return m.trigger(e, intentClose)
	}
	return nil
}
