package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/msgbox/theme"
)

const (
	headerHeight = 2
	footerHeight = 2
)

type styles struct {
	tab       lipgloss.Style
	tabActive lipgloss.Style
	rule      lipgloss.Style

	heading      lipgloss.Style
	muted        lipgloss.Style
	button       lipgloss.Style
	buttonFocus  lipgloss.Style
	buttonActive lipgloss.Style

	footer FooterStyles
}

// newStyles derives every page style from the active palette.
func newStyles(p theme.Palette) styles {
	return styles{
		tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(p.Muted),
		tabActive: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(p.Primary).Underline(true),
		rule:      lipgloss.NewStyle().Foreground(p.Border),

		heading: lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(p.Text).
			Background(p.Surface),
		buttonFocus: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(p.OnColor).
			Background(p.Primary),
		buttonActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(p.Primary).
			Background(p.Surface),

		footer: footerStylesFor(p),
	}
}
