package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/msgbox/dialogs"
	"github.com/andareed/msgbox/theme"
)

const (
	customIcon = "⋯"
	defaultURL = "https://example.com"
)

type homeButton struct {
	label  string
	visual dialogs.Visual
	// active marks the selected option of a toggle group
	active bool
	press  func(m *model) tea.Cmd
}

type homeGroup struct {
	title   string
	buttons []homeButton
}

func (m *model) homeGroups() []homeGroup {
	modes := homeGroup{title: m.tr.T("home.colorMode")}
	for _, mode := range theme.Modes {
		mode := mode
		modes.buttons = append(modes.buttons, homeButton{
			label:  m.tr.T("colorMode." + string(mode)),
			active: m.modes.Mode() == mode,
			press:  func(m *model) tea.Cmd { return m.setColorMode(mode) },
		})
	}

	variants := func(open func(m *model, v dialogs.Visual, icon, content string) tea.Cmd) []homeButton {
		bs := []homeButton{{
			label: m.tr.T("home.default"),
			press: func(m *model) tea.Cmd { return open(m, dialogs.VisualNone, "", "") },
		}}
		for _, v := range dialogs.Visuals {
			v := v
			bs = append(bs, homeButton{
				label:  string(v),
				visual: v,
				press:  func(m *model) tea.Cmd { return open(m, v, "", "") },
			})
		}
		return append(bs, homeButton{
			label: m.tr.T("home.customIcon"),
			press: func(m *model) tea.Cmd { return open(m, dialogs.VisualNone, customIcon, "") },
		})
	}

	return []homeGroup{
		modes,
		{title: m.tr.T("home.info"), buttons: variants((*model).openInfo)},
		{title: m.tr.T("home.confirm"), buttons: variants((*model).openConfirm)},
		{title: m.tr.T("home.prompt"), buttons: []homeButton{{
			label: m.tr.T("home.url"),
			press: func(m *model) tea.Cmd { return m.openURLPrompt("") },
		}}},
	}
}

func (m *model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := m.homeGroups()
	switch {
	case key.Matches(msg, Keys.Up):
		m.ui.row = max(0, m.ui.row-1)
	case key.Matches(msg, Keys.Down):
		m.ui.row = min(len(groups)-1, m.ui.row+1)
	case key.Matches(msg, Keys.Left):
		m.ui.col = max(0, m.ui.col-1)
	case key.Matches(msg, Keys.Right):
		m.ui.col++
	case key.Matches(msg, Keys.Press):
		m.clampHomeCursor(groups)
		return m, groups[m.ui.row].buttons[m.ui.col].press(m)
	}
	m.clampHomeCursor(groups)
	return m, nil
}

func (m *model) clampHomeCursor(groups []homeGroup) {
	m.ui.row = clamp(m.ui.row, 0, len(groups)-1)
	m.ui.col = clamp(m.ui.col, 0, len(groups[m.ui.row].buttons)-1)
}

func (m *model) homeView(st styles) string {
	groups := m.homeGroups()
	m.clampHomeCursor(groups)
	p := m.modes.Palette()

	var sections []string
	for r, g := range groups {
		var row []string
		for c, b := range g.buttons {
			label := b.label
			if b.active {
				label = "● " + label
			}
			s := st.button
			switch {
			case r == m.ui.row && c == m.ui.col:
				s = st.buttonFocus
			case b.active:
				s = st.buttonActive
			case b.visual != dialogs.VisualNone:
				s = s.Foreground(p.Accent(string(b.visual)))
			}
			row = append(row, s.Render(label))
		}
		sections = append(sections,
			st.heading.Render(g.title),
			strings.Join(row, " "),
			"")
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// --- dialogs opened from the home page -------------------------------------

// waitHandler resolves after the configured delay, or fails when the app
// is shutting down.
func (m *model) waitHandler() dialogs.Handler {
	delay := m.delay
	return func(ctx context.Context) (dialogs.Result, error) {
		return dialogs.Proceed, wait(ctx, delay)
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *model) openInfo(v dialogs.Visual, icon, content string) tea.Cmd {
	if content == "" {
		content = m.tr.T("home.messageContent")
	}
	return m.dialogs.Info(dialogs.Options{
		Base: dialogs.Base{
			Title:           m.tr.T("home.messageTitle"),
			Content:         content,
			Visual:          v,
			Icon:            icon,
			ShowCloseButton: true,
		},
		OnConfirm: m.waitHandler(),
	})
}

func (m *model) openConfirm(v dialogs.Visual, icon, content string) tea.Cmd {
	if content == "" {
		content = m.tr.T("home.deleteContent")
	}
	return m.dialogs.Confirm(dialogs.Options{
		Base: dialogs.Base{
			Title:           m.tr.T("home.warningTitle"),
			Content:         content,
			Visual:          v,
			Icon:            icon,
			ShowCloseButton: true,
		},
		OnConfirm: m.waitHandler(),
	})
}

func (m *model) openURLPrompt(initial string) tea.Cmd {
	if initial == "" {
		initial = defaultURL
	}
	invalid := m.tr.T("home.urlInvalid")
	delay, send := m.delay, m.send
	return m.dialogs.Prompt(dialogs.PromptOptions{
		Base: dialogs.Base{
			Title:   m.tr.T("home.messageTitle"),
			Content: m.tr.T("home.urlContent"),
		},
		InputType:  dialogs.InputURL,
		InputValue: initial,
		InputLabel: m.tr.T("home.urlLabel"),
		Validate: func(_ context.Context, v string) string {
			if validURL(v) {
				return ""
			}
			return invalid
		},
		OnConfirm: func(ctx context.Context, v string) (dialogs.Result, error) {
			if err := wait(ctx, delay); err != nil {
				return dialogs.Proceed, err
			}
			send(urlConfirmedMsg{value: v})
			return dialogs.Proceed, nil
		},
	})
}

// validURL accepts absolute URLs: a scheme plus a host or an opaque part.
func validURL(v string) bool {
	u, err := url.Parse(strings.TrimSpace(v))
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}

func (m *model) openHelp() tea.Cmd {
	var b strings.Builder
	for _, k := range append(Keys.Legend(), dialogs.Keys.Legend()...) {
		h := k.Help()
		fmt.Fprintf(&b, "%-14s %s\n", h.Key, h.Desc)
	}
	return m.dialogs.Info(dialogs.Options{
		Base: dialogs.Base{
			Title:           m.tr.T("help.title"),
			Content:         strings.TrimRight(b.String(), "\n"),
			Visual:          dialogs.VisualInfo,
			ShowCloseButton: true,
			MinWidth:        56,
		},
	})
}
