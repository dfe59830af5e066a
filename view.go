package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/andareed/msgbox/dialogs"
)

func (m *model) headerView(st styles, width int) string {
	var tabs []string
	for _, p := range pages {
		s := st.tab
		if p == m.ui.page {
			s = st.tabActive
		}
		tabs = append(tabs, s.Render(m.tr.T(p.key())))
	}
	title := st.heading.Render(m.tr.T("app.title"))
	line := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{title, "  "}, tabs...)...)
	return ansi.Truncate(line, width, "") + "\n" + st.rule.Render(strings.Repeat("─", width))
}

// footerView renders the 2-line footer.
func (m *model) footerView(st styles, width int) string {
	fs := FooterState{
		Mode:          m.ui.command.cmd,
		Page:          m.tr.T(m.ui.page.key()),
		StatusMessage: m.idleCommandHintsLine(),
		Info: []string{
			m.tr.T("app.footer.lang") + " " + m.tr.Lang(),
			m.tr.T("app.footer.mode") + " " + m.modeLabel(),
		},
	}
	if n := m.dialogs.Len(); n > 0 {
		fs.Info = append(fs.Info, m.tr.T("app.footer.dialogs", "count", strconv.Itoa(n)))
	}
	if m.ui.command.cmd != CmdNone {
		fs.ModeInput = m.activeCommandLine()
		fs.StatusMessage = m.commandHintsLine(m.ui.command.cmd)
	}
	return RenderFooter(width, fs, st.footer)
}

// modeLabel shows the chosen mode, plus what system resolved to.
func (m *model) modeLabel() string {
	mode := m.modes.Mode()
	label := m.tr.T("colorMode." + string(mode))
	if mode != m.modes.Resolve() {
		label += " (" + m.tr.T("colorMode."+string(m.modes.Resolve())) + ")"
	}
	return label
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	w, h := m.ui.terminalWidth, m.ui.terminalHeight
	p := m.modes.Palette()
	st := newStyles(p)

	var body string
	switch m.ui.page {
	case pageAbout:
		body = m.about.View(m.tr, m.modes.Resolve(), st)
	default:
		body = lipgloss.PlaceHorizontal(w, lipgloss.Center, "\n"+m.homeView(st))
	}

	screen := strings.Join([]string{
		m.headerView(st, w),
		fitHeight(body, m.pageHeight()),
		m.footerView(st, w),
	}, "\n")

	screen = m.dialogs.View(screen)
	if t := m.toasts.View(p, min(60, w-4)); t != "" {
		screen = dialogs.Overlay(screen, t, (w-lipgloss.Width(t))/2, 1, w, h)
	}
	return screen
}

// fitHeight pads or cuts s to exactly h lines.
func fitHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
