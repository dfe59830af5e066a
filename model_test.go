package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/msgbox/config"
	"github.com/andareed/msgbox/dialogs"
	"github.com/andareed/msgbox/i18n"
	"github.com/andareed/msgbox/prefs"
	"github.com/andareed/msgbox/theme"
	"github.com/andareed/msgbox/toast"
)

type harness struct {
	m     *model
	store *prefs.MemoryStore
	sent  []tea.Msg
}

func newHarness(t *testing.T, seed map[string]string) *harness {
	t.Helper()
	store := prefs.NewMemoryStore(seed)
	modes := theme.NewProvider(store, theme.ModeSystem, theme.WithDarkDetector(func() bool { return true }))
	tr, err := i18n.New("en_US")
	require.NoError(t, err)

	n := 0
	cfg := config.Config{UI: config.UIConfig{MaxToasts: 5}}
	h := &harness{store: store}
	h.m = newModel(cfg, store, modes, tr,
		dialogs.WithStaticCursor(),
		dialogs.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("d%d", n)
		}),
	)
	h.m.send = func(msg tea.Msg) { h.sent = append(h.sent, msg) }
	h.m.copy = func(string) error { return nil }
	h.m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

// drain runs cmd and feeds every resulting message back into the model.
func (h *harness) drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil, spinner.TickMsg:
	case tea.BatchMsg:
		for _, c := range msg {
			h.drain(c)
		}
	default:
		_, next := h.m.Update(msg)
		h.drain(next)
	}
}

func (h *harness) key(k tea.KeyMsg) {
	_, cmd := h.m.Update(k)
	h.drain(cmd)
}

func (h *harness) press(k tea.KeyType) { h.key(tea.KeyMsg{Type: k}) }

func (h *harness) typeText(s string) {
	for _, r := range s {
		if r == ' ' {
			h.press(tea.KeySpace)
			continue
		}
		h.key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) toastTexts() []string {
	var out []string
	for _, t := range h.m.toasts.Items() {
		out = append(out, t.Text)
	}
	return out
}

func TestCycleModePersists(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, theme.ModeSystem, h.m.modes.Mode())

	h.typeText("m")
	require.Equal(t, theme.ModeLight, h.m.modes.Mode())
	v, _ := h.store.Get(theme.StorageKey)
	require.Equal(t, "light", v)

	h.typeText("mm")
	require.Equal(t, theme.ModeSystem, h.m.modes.Mode())
	require.Zero(t, h.m.toasts.Len())
}

func TestModeWriteFailureToasts(t *testing.T) {
	h := newHarness(t, map[string]string{theme.StorageKey: "dark"})
	h.store.SetErr = errors.New("disk full")

	h.typeText("m")
	// the mode still applies for this session
	require.Equal(t, theme.ModeSystem, h.m.modes.Mode())
	items := h.m.toasts.Items()
	require.Len(t, items, 1)
	assert.Equal(t, toast.Error, items[0].Variant)
	assert.Contains(t, items[0].Text, "disk full")
}

func TestLanguageToggle(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("L")
	require.Equal(t, "zh_CN", h.m.tr.Lang())
	v, _ := h.store.Get(i18n.StorageKey)
	require.Equal(t, "zh_CN", v)

	// open dialogs follow the new language
	h.m.execute("confirm")
	out := ansi.Strip(h.m.View())
	require.Contains(t, out, "确定")

	h.store.SetErr = errors.New("locked")
	h.m.dialogs.Remove(h.m.dialogs.Focused())
	h.typeText("L")
	require.Equal(t, "en_US", h.m.tr.Lang())
	require.Len(t, h.m.toasts.Items(), 3)
	assert.Contains(t, h.toastTexts()[2], "locked")
}

func TestCommandLine(t *testing.T) {
	h := newHarness(t, nil)

	h.typeText(":mode dark")
	require.Equal(t, CmdRun, h.m.ui.command.cmd)
	require.Equal(t, ":mode dark", h.m.activeCommandLine())
	h.press(tea.KeyEnter)
	require.Equal(t, CmdNone, h.m.ui.command.cmd)
	require.Equal(t, theme.ModeDark, h.m.modes.Mode())

	h.typeText("#hello")
	h.press(tea.KeyEnter)
	h.typeText(":toast error boom")
	h.press(tea.KeyEnter)
	h.typeText(":frobnicate")
	h.press(tea.KeyEnter)
	require.Equal(t, []string{"hello", "boom", "Unknown command: frobnicate"}, h.toastTexts())
	require.Equal(t, toast.Error, h.m.toasts.Items()[1].Variant)

	h.typeText(":clear")
	h.press(tea.KeyEnter)
	require.Zero(t, h.m.toasts.Len())

	// backspace on an empty line leaves command mode, esc drops the line
	h.typeText(":a")
	h.press(tea.KeyBackspace)
	h.press(tea.KeyBackspace)
	require.Equal(t, CmdNone, h.m.ui.command.cmd)
	h.typeText(":mode light")
	h.press(tea.KeyEsc)
	require.Equal(t, theme.ModeDark, h.m.modes.Mode())
}

func TestHomeButtonsOpenDialogs(t *testing.T) {
	h := newHarness(t, nil)

	h.press(tea.KeyDown)
	h.press(tea.KeyEnter)
	require.Equal(t, 1, h.m.dialogs.Len())
	d := h.m.dialogs.Descriptors()[0]
	assert.Equal(t, dialogs.KindInfo, d.Kind)
	assert.Equal(t, "Message", d.Title)
	assert.True(t, d.ShowCloseButton)

	// keys go to the dialog while it is open; q does not quit
	h.typeText("q")
	require.NoError(t, h.m.ctx.Err())
	h.press(tea.KeyEsc)
	require.Zero(t, h.m.dialogs.Len())

	// last confirm button opens a confirm with the custom icon
	h.press(tea.KeyDown)
	for range 10 {
		h.press(tea.KeyRight)
	}
	h.press(tea.KeyEnter)
	d = h.m.dialogs.Descriptors()[0]
	assert.Equal(t, dialogs.KindConfirm, d.Kind)
	assert.Equal(t, customIcon, d.Icon)
	assert.Equal(t, "Warning", d.Title)
}

func TestHomeModeButtons(t *testing.T) {
	h := newHarness(t, nil)
	h.press(tea.KeyRight)
	h.press(tea.KeyRight)
	h.press(tea.KeyEnter)
	require.Equal(t, theme.ModeDark, h.m.modes.Mode())
}

func TestURLPromptFlow(t *testing.T) {
	h := newHarness(t, nil)
	var copied []string
	h.m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	h.m.execute("prompt nope")
	id := h.m.dialogs.Focused()
	h.drain(h.m.dialogs.Trigger(id, dialogs.ActionConfirm))
	require.True(t, h.m.dialogs.Has(id))
	require.Equal(t, "Invalid URL format", h.m.dialogs.ValidationError(id))
	require.Empty(t, h.sent)

	h.press(tea.KeyCtrlU)
	h.typeText("https://go.dev")
	h.press(tea.KeyEnter)
	require.False(t, h.m.dialogs.Has(id))
	require.Equal(t, []tea.Msg{urlConfirmedMsg{value: "https://go.dev"}}, h.sent)

	_, cmd := h.m.Update(h.sent[0])
	h.drain(cmd)
	require.Equal(t, []string{"https://go.dev"}, copied)
	require.Equal(t, []string{"URL: https://go.dev (copied)"}, h.toastTexts())
}

func TestCopyFailureToasts(t *testing.T) {
	h := newHarness(t, nil)
	h.m.copy = func(string) error { return errors.New("no clipboard") }

	_, cmd := h.m.Update(urlConfirmedMsg{value: "https://example.com"})
	h.drain(cmd)
	texts := h.toastTexts()
	require.Len(t, texts, 2)
	assert.Equal(t, "URL: https://example.com", texts[0])
	assert.Contains(t, texts[1], "no clipboard")
}

func TestValidURL(t *testing.T) {
	for in, want := range map[string]bool{
		"https://example.com": true,
		"mailto:a@b.c":        true,
		"https://":            false,
		"example.com":         false,
		"":                    false,
		"nope":                false,
	} {
		assert.Equal(t, want, validURL(in), in)
	}
}

func TestForceQuitCancelsHandlers(t *testing.T) {
	h := newHarness(t, nil)
	h.m.execute("info hi")
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Error(t, h.m.ctx.Err())
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t, nil)
	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPages(t *testing.T) {
	h := newHarness(t, nil)
	h.press(tea.KeyTab)
	require.Equal(t, pageAbout, h.m.ui.page)
	h.press(tea.KeyTab)
	require.Equal(t, pageHome, h.m.ui.page)
	h.typeText("2")
	require.Equal(t, pageAbout, h.m.ui.page)

	h.typeText("++")
	require.Equal(t, 2, h.m.about.counter)
	out := ansi.Strip(h.m.View())
	assert.Contains(t, out, "Counter")
	assert.Contains(t, out, "MessageBox Demo")
}

func TestViewLayout(t *testing.T) {
	h := newHarness(t, nil)
	out := ansi.Strip(h.m.View())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	assert.Contains(t, lines[0], "MessageBox Demo")
	assert.Contains(t, out, "Custom Icon")
	assert.Contains(t, lines[28], "NORMAL")
	assert.Contains(t, lines[28], "Lang en_US")
	assert.Contains(t, lines[28], "System (Dark)")

	h.m.execute("info hello there")
	h.m.execute("toast success saved")
	out = ansi.Strip(h.m.View())
	assert.Contains(t, out, "hello there")
	assert.Contains(t, out, "saved")
	assert.Contains(t, out, "1 open")
}

func TestHelpListsKeys(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("?")
	require.Equal(t, 1, h.m.dialogs.Len())
	d := h.m.dialogs.Descriptors()[0]
	assert.Equal(t, "Keys", d.Title)
	assert.Contains(t, d.Content, "cycle color mode")
	assert.Contains(t, d.Content, "ctrl+n")
}
