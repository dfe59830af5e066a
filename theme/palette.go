package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a page or dialog draws with.
type Palette struct {
	Name string

	Text    lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Border  lipgloss.Color
	Primary lipgloss.Color
	OnColor lipgloss.Color

	Success lipgloss.Color
	Info    lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	Dark = Palette{
		Name:    "dark",
		Text:    lipgloss.Color("#e0e0e0"),
		Muted:   lipgloss.Color("#9a9a9a"),
		Surface: lipgloss.Color("#2b2b2b"),
		Overlay: lipgloss.Color("236"),
		Border:  lipgloss.Color("252"),
		Primary: lipgloss.Color("#90caf9"),
		OnColor: lipgloss.Color("#000000"),
		Success: lipgloss.Color("#66bb6a"),
		Info:    lipgloss.Color("#29b6f6"),
		Warning: lipgloss.Color("#ffa726"),
		Error:   lipgloss.Color("#f44336"),
	}

	Light = Palette{
		Name:    "light",
		Text:    lipgloss.Color("#212121"),
		Muted:   lipgloss.Color("#6b6b6b"),
		Surface: lipgloss.Color("#f5f5f5"),
		Overlay: lipgloss.Color("252"),
		Border:  lipgloss.Color("240"),
		Primary: lipgloss.Color("#1976d2"),
		OnColor: lipgloss.Color("#ffffff"),
		Success: lipgloss.Color("#2e7d32"),
		Info:    lipgloss.Color("#0288d1"),
		Warning: lipgloss.Color("#ed6c02"),
		Error:   lipgloss.Color("#d32f2f"),
	}
)

// Accent returns the color for a semantic name ("success", "info",
// "warning", "error", "primary"). Unknown names get Primary.
func (p Palette) Accent(name string) lipgloss.Color {
	switch name {
	case "success":
		return p.Success
	case "info":
		return p.Info
	case "warning", "warn":
		return p.Warning
	case "error":
		return p.Error
	}
	return p.Primary
}
