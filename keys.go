package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Home       key.Binding
	About      key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Press      key.Binding
	CycleMode  key.Binding
	CycleLang  key.Binding
	Command    key.Binding
	QuickToast key.Binding
	Counter    key.Binding
	OpenHelp   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit, even with dialogs open"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("]", "tab"),
		key.WithHelp("]/tab", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("[", "shift+tab"),
		key.WithHelp("[/shift+tab", "previous page"),
	),
	Home: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "home"),
	),
	About: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "about"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "move right"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "press button"),
	),
	CycleMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "cycle color mode"),
	),
	CycleLang: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "switch language"),
	),
	Command: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "command line"),
	),
	QuickToast: key.NewBinding(
		key.WithKeys("#"),
		key.WithHelp("#", "quick toast"),
	),
	Counter: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "bump counter (about)"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.ForceQuit,
		k.NextPage,
		k.PrevPage,
		k.Up,
		k.Down,
		k.Left,
		k.Right,
		k.Press,
		k.CycleMode,
		k.CycleLang,
		k.Command,
		k.QuickToast,
		k.Counter,
		k.OpenHelp,
	}
}
