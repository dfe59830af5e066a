package dialogs

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// backdrop fits the page into a width x height grid and dims it. Styling is
// stripped first so the dim color applies to every cell.
func backdrop(page string, style lipgloss.Style, width, height int) string {
	lines := strings.Split(ansi.Strip(page), "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], width, "")
		}
		out[i] = style.Render(padRight(line, width))
	}
	return strings.Join(out, "\n")
}

// Overlay composites overlay on top of base with its top-left corner at
// cell (x, y). Cells outside the width x height grid are dropped.
func Overlay(base, overlay string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")
	ow := 0
	for _, l := range overlayLines {
		if w := ansi.StringWidth(l); w > ow {
			ow = w
		}
	}
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		line = padRight(line, ow)
		if x+ow > width {
			line = ansi.Truncate(line, width-x, "")
		}
		right := ""
		if end := x + ansi.StringWidth(line); end < width {
			right = ansi.TruncateLeft(target, end, "")
		}
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
