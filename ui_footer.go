package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/andareed/msgbox/theme"
)

type FooterState struct {
	Mode      Command
	ModeInput string

	Page string
	// Info segments are shown right-aligned, joined by " · ".
	Info []string

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	PageFG     lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func footerStylesFor(p theme.Palette) FooterStyles {
	return FooterStyles{
		BarBG:      p.Surface,
		StatusBG:   p.Overlay,
		ModePillBG: p.Warning,
		ModePillFG: p.OnColor,
		PageFG:     p.Primary,
		TextFG:     p.Text,
		DimFG:      p.Muted,
		StatusFG:   p.Muted,
		LegendFG:   p.Text,
	}
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(? help · : command · q quit)"
	}
	return renderControlBar(width, st, styles) + "\n" + renderStatusBar(width, st, styles)
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	bar := lipgloss.NewStyle().Background(styles.BarBG).Foreground(styles.TextFG)

	rightPlain := truncatePlain(" "+strings.Join(st.Info, " · ")+" ", width/2)
	rightW := ansi.StringWidth(rightPlain)
	leftW := max(0, width-rightW)

	pillW := clamp(ansi.StringWidth(commandLabel(st.Mode))+2, 0, leftW)
	pill := lipgloss.NewStyle().
		Background(styles.ModePillBG).
		Foreground(styles.ModePillFG).
		Bold(true).
		Render(truncatePlain(" "+commandLabel(st.Mode)+" ", pillW))

	rest := leftW - pillW
	page := truncatePlain(" ▸ "+st.Page, rest)
	rest -= ansi.StringWidth(page)
	input := ""
	if in := strings.TrimSpace(st.ModeInput); in != "" && rest > 0 {
		input = truncatePlain(" ▸ "+in, rest)
		rest -= ansi.StringWidth(input)
	}

	return pill +
		bar.Foreground(styles.PageFG).Render(page) +
		bar.Render(input+strings.Repeat(" ", max(0, rest))) +
		bar.Foreground(styles.DimFG).Render(rightPlain)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	bar := lipgloss.NewStyle().Background(styles.StatusBG)

	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-ansi.StringWidth(legendPlain))
	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	return bar.Foreground(styles.StatusFG).Render(msgPlain) +
		bar.Foreground(styles.LegendFG).Render(legendPlain)
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdRun:
		return "COMMAND"
	case CmdToast:
		return "TOAST"
	default:
		return "NORMAL"
	}
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := ansi.StringWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "…")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
