package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/msgbox/logging"
	"github.com/andareed/msgbox/toast"
)

type (
	// urlConfirmedMsg is sent by the URL prompt's handler once it resolved.
	urlConfirmedMsg struct{ value string }

	copiedMsg struct {
		value string
		err   error
	}
)

func (m *model) notify(v toast.Variant, text string) tea.Cmd {
	logging.Debugf("toast[%s]: %s", v, text)
	return m.toasts.Push(v, text)
}

// copyCmd copies off the update loop and reports back with copiedMsg.
func (m *model) copyCmd(value string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{value: value, err: copyFn(value)}
	}
}

func (m *model) handleCopied(msg copiedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Warnf("clipboard: %v", msg.err)
		return tea.Batch(
			m.notify(toast.Success, m.tr.T("home.urlToast", "value", msg.value)),
			m.notify(toast.Warning, m.tr.T("toast.copyFailed", "error", msg.err.Error())),
		)
	}
	return m.notify(toast.Success, m.tr.T("home.urlCopied", "value", msg.value))
}
