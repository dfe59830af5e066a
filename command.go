package main

type Command int

const (
	CmdNone Command = iota
	CmdRun
	CmdToast
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdRun
	case '#':
		return CmdToast
	default:
		return CmdNone
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdRun:
		return ":"
	case CmdToast:
		return "#"
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdRun:
		return "mode|lang|info|confirm|prompt|toast|home|about|help|clear|quit   enter: run   esc: cancel"
	default:
		return "enter: show   esc: cancel"
	}
}

func (m *model) idleCommandHintsLine() string {
	return "? help   : command   # toast   m mode   L lang"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	prompt := m.commandPrompt(m.ui.command.cmd)
	return prompt + m.ui.command.buf
}
