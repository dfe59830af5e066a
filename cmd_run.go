package main

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/msgbox/dialogs"
	"github.com/andareed/msgbox/i18n"
	"github.com/andareed/msgbox/logging"
	"github.com/andareed/msgbox/theme"
	"github.com/andareed/msgbox/toast"
)

func (m *model) runCommand() tea.Cmd {
	line := strings.TrimSpace(m.ui.command.buf)
	switch m.ui.command.cmd {
	case CmdToast:
		if line == "" {
			return nil
		}
		return m.notify(toast.Default, line)
	case CmdRun:
		return m.execute(line)
	}
	return nil
}

// execute runs one command line, e.g. "mode dark" or "info hello".
func (m *model) execute(line string) tea.Cmd {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	logging.Debugf("command: %q args=%q", name, rest)

	switch strings.ToLower(name) {
	case "":
		return nil
	case "mode":
		mode, err := theme.ParseColorMode(rest)
		if err != nil {
			return m.usage("mode system|light|dark")
		}
		return m.setColorMode(mode)
	case "lang":
		if rest == "" {
			return m.usage("lang " + strings.Join(i18n.Supported, "|"))
		}
		return m.setLanguage(i18n.Match(rest))
	case "info":
		return m.openInfo(dialogs.VisualNone, "", rest)
	case "confirm":
		return m.openConfirm(dialogs.VisualNone, "", rest)
	case "prompt":
		return m.openURLPrompt(rest)
	case "toast":
		variant, text := toast.Default, rest
		if v, after, ok := strings.Cut(rest, " "); ok {
			switch toast.Variant(v) {
			case toast.Success, toast.Info, toast.Warning, toast.Error:
				variant, text = toast.Variant(v), after
			}
		}
		if text == "" {
			return m.usage("toast [success|info|warning|error] <text>")
		}
		return m.notify(variant, text)
	case "home":
		m.ui.page = pageHome
		return nil
	case "about":
		m.ui.page = pageAbout
		return nil
	case "help":
		return m.openHelp()
	case "clear":
		for _, t := range m.toasts.Items() {
			m.toasts.Dismiss(t.ID)
		}
		return nil
	case "quit", "q":
		return m.quit()
	}
	return m.notify(toast.Warning, m.tr.T("command.unknown", "name", name))
}

func (m *model) usage(text string) tea.Cmd {
	return m.notify(toast.Warning, m.tr.T("command.usage", "usage", text))
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if m.ui.command.buf == "" {
			m.exitCommandMode()
			return m, nil
		}
		_, size := utf8.DecodeLastRuneInString(m.ui.command.buf)
		m.ui.command.buf = m.ui.command.buf[:len(m.ui.command.buf)-size]
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	case tea.KeyRunes:
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
