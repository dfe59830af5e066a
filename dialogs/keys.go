package dialogs

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Confirm    key.Binding
	Escape     key.Binding
	Close      key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Left       key.Binding
	Right      key.Binding
	NextDialog key.Binding
	PrevDialog key.Binding
}

var Keys = KeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm / press button"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Close: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("ctrl+w", "close button"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous button"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next button"),
	),
	NextDialog: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "next dialog"),
	),
	PrevDialog: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "previous dialog"),
	),
}

func (k KeyMap) Legend() []key.Binding {
	return []key.Binding{
		k.Confirm,
		k.Escape,
		k.Close,
		k.NextField,
		k.NextDialog,
		k.PrevDialog,
	}
}
