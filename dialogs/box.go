package dialogs

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusTarget int

const (
	focusNone focusTarget = iota
	focusInput
	focusCancel
	focusConfirm
)

// intent is what a key or click asks the manager to do with a box.
type intent int

const (
	intentNone intent = iota
	intentClose
	intentCancel
	intentConfirm
)

// box is the presentation state of one queued descriptor: idle until a
// confirm starts, submitting (loading) until the handler resolves.
type box struct {
	desc    Descriptor
	input   textinput.Model
	spinner spinner.Model

	loading  bool
	selected bool
	errMsg   string
	// validateSeq tags live validation runs so stale results are dropped.
	validateSeq uint64
	// checkedSeq is the run errMsg came from.
	checkedSeq uint64
	focus      focusTarget
}

func newBox(d Descriptor, staticCursor bool) *box {
	b := &box{
		desc:    d,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	if d.Input != nil {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = d.Input.Placeholder
		ti.CharLimit = 512
		if d.Input.Type == InputPassword {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if staticCursor {
			ti.Cursor.SetMode(cursor.CursorStatic)
		}
		b.input = ti
	}
	return b
}

func (b *box) hasInput() bool { return b.desc.Input != nil }

// open seeds the field with the configured value, selects it and focuses it.
func (b *box) open() tea.Cmd {
	b.focus = b.defaultFocus()
	if !b.hasInput() {
		return nil
	}
	b.input.SetValue(b.desc.Input.Value)
	b.input.CursorEnd()
	b.setSelected(b.desc.Input.Value != "")
	return b.input.Focus()
}

// reset is the presentation-side cleanup on close: empty field, no error.
func (b *box) reset() {
	b.errMsg = ""
	b.loading = false
	if b.hasInput() {
		b.input.SetValue("")
		b.setSelected(false)
		b.input.Blur()
	}
}

func (b *box) defaultFocus() focusTarget {
	switch {
	case b.hasInput():
		return focusInput
	case b.desc.ShowConfirmButton:
		return focusConfirm
	case b.desc.ShowCancelButton:
		return focusCancel
	}
	return focusNone
}

func (b *box) targets() []focusTarget {
	var ts []focusTarget
	if b.hasInput() {
		ts = append(ts, focusInput)
	}
	if b.desc.ShowCancelButton {
		ts = append(ts, focusCancel)
	}
	if b.desc.ShowConfirmButton {
		ts = append(ts, focusConfirm)
	}
	return ts
}

func (b *box) cycleFocus(step int) tea.Cmd {
	ts := b.targets()
	if len(ts) == 0 {
		return nil
	}
	idx := 0
	for i, t := range ts {
		if t == b.focus {
			idx = i
			break
		}
	}
	idx = (idx + step + len(ts)) % len(ts)
	return b.setFocus(ts[idx])
}

func (b *box) moveButton(step int) {
	var buttons []focusTarget
	if b.desc.ShowCancelButton {
		buttons = append(buttons, focusCancel)
	}
	if b.desc.ShowConfirmButton {
		buttons = append(buttons, focusConfirm)
	}
	for i, t := range buttons {
		if t == b.focus {
			j := i + step
			if j >= 0 && j < len(buttons) {
				b.focus = buttons[j]
			}
			return
		}
	}
}

func (b *box) setFocus(t focusTarget) tea.Cmd {
	b.focus = t
	if !b.hasInput() {
		return nil
	}
	if t == focusInput {
		return b.input.Focus()
	}
	b.setSelected(false)
	b.input.Blur()
	return nil
}

// activate is called when the box becomes the focused dialog of the stack.
func (b *box) activate() tea.Cmd {
	if b.hasInput() && b.focus == focusInput {
		return b.input.Focus()
	}
	return nil
}

func (b *box) deactivate() {
	if b.hasInput() {
		b.input.Blur()
	}
}

func (b *box) setSelected(v bool) {
	b.selected = v
	if v {
		b.input.TextStyle = lipgloss.NewStyle().Reverse(true)
	} else {
		b.input.TextStyle = lipgloss.NewStyle()
	}
}

func (b *box) value() string {
	if !b.hasInput() {
		return ""
	}
	return b.input.Value()
}

// handleKey maps a key to an intent. edited reports a change of the field
// value so the caller can revalidate. Everything is ignored while loading.
func (b *box) handleKey(msg tea.KeyMsg, keys KeyMap) (in intent, edited bool, cmd tea.Cmd) {
	if b.loading {
		return intentNone, false, nil
	}

	switch {
	case key.Matches(msg, keys.Escape):
		if b.desc.CloseOnEscape {
			return intentClose, false, nil
		}
		return intentNone, false, nil
	case key.Matches(msg, keys.Close):
		if b.desc.ShowCloseButton {
			return intentClose, false, nil
		}
		return intentNone, false, nil
	case key.Matches(msg, keys.NextField):
		return intentNone, false, b.cycleFocus(1)
	case key.Matches(msg, keys.PrevField):
		return intentNone, false, b.cycleFocus(-1)
	case key.Matches(msg, keys.Confirm):
		switch b.focus {
		case focusInput, focusConfirm:
			return intentConfirm, false, nil
		case focusCancel:
			return intentCancel, false, nil
		}
		return intentNone, false, nil
	}

	if b.focus != focusInput {
		switch {
		case key.Matches(msg, keys.Left):
			b.moveButton(-1)
		case key.Matches(msg, keys.Right):
			b.moveButton(1)
		}
		return intentNone, false, nil
	}

	edited, cmd = b.edit(msg)
	return intentNone, edited, cmd
}

func (b *box) edit(msg tea.KeyMsg) (bool, tea.Cmd) {
	before := b.input.Value()
	if b.selected {
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			b.input.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			b.input.SetValue("")
			b.setSelected(false)
			return before != "", nil
		}
		b.setSelected(false)
	}
	if b.desc.Input.Type == InputNumber && msg.Type == tea.KeyRunes && !numeric(msg.Runes) {
		return b.input.Value() != before, nil
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b.input.Value() != before, cmd
}

func numeric(rs []rune) bool {
	for _, r := range rs {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E' {
			return false
		}
	}
	return true
}

// startSubmit enters the submitting state and starts the spinner.
func (b *box) startSubmit() tea.Cmd {
	b.loading = true
	return b.spinner.Tick
}

// finish returns to idle after a veto, a failure or a failed validation.
func (b *box) finish() {
	b.loading = false
}

func (b *box) tick(msg spinner.TickMsg) tea.Cmd {
	if !b.loading {
		return nil
	}
	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(msg)
	return cmd
}
