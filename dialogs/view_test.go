package dialogs

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func stripped(s string) string { return ansi.Strip(s) }

func click(m *Manager, x, y int) []tea.Msg {
	return drain(m, m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
}

func sized(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	m, _ := newTestManager(t, opts...)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestViewWithoutDialogs(t *testing.T) {
	m := sized(t)
	require.Equal(t, "page", m.View("page"))
}

func TestViewRendersDescriptor(t *testing.T) {
	m := sized(t)
	m.Confirm(Options{Base: Base{
		Title:           "Warning",
		Content:         "Delete this record?",
		Visual:          VisualWarning,
		ShowCloseButton: true,
		ConfirmText:     "Delete",
	}})

	out := stripped(m.View("page text"))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	require.Contains(t, out, "Warning")
	require.Contains(t, out, "[×]")
	require.Contains(t, out, "! Delete this record?")
	require.Contains(t, out, "Cancel")
	require.Contains(t, out, "Delete")
	require.Contains(t, out, "page text")
	for _, l := range lines {
		require.LessOrEqual(t, ansi.StringWidth(l), 100)
	}
}

func TestViewHidesButtons(t *testing.T) {
	m := sized(t)
	m.Info(Options{Base: Base{Title: "Message", Content: "This is a message"}})
	out := stripped(m.View(""))
	require.Contains(t, out, "Confirm")
	require.NotContains(t, out, "Cancel")
	require.NotContains(t, out, "[×]")
}

func TestViewPromptShowsError(t *testing.T) {
	m := sized(t)
	m.Prompt(PromptOptions{InputLabel: "URL", Validate: isURL})
	typeText(m, "nope")
	out := stripped(m.View(""))
	require.Contains(t, out, "URL")
	require.Contains(t, out, "> nope")
	require.Contains(t, out, "bad")
}

func TestViewStackHint(t *testing.T) {
	m := sized(t)
	m.Info(Options{Base: Base{Title: "one"}})
	require.NotContains(t, stripped(m.View("")), "open)")
	m.Info(Options{Base: Base{Title: "two"}})
	require.Contains(t, stripped(m.View("")), "(2 open)")
}

func TestTranslatedLabels(t *testing.T) {
	m := sized(t, WithTranslator(fakeTranslator{"dialog.action.confirm": "确定", "dialog.action.cancel": "取消"}))
	m.Confirm(Options{})
	out := stripped(m.View(""))
	require.Contains(t, out, "确定")
	require.Contains(t, out, "取消")
}

type fakeTranslator map[string]string

func (f fakeTranslator) T(key string, _ ...string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return key
}

func TestClickButtons(t *testing.T) {
	m := sized(t)
	var hit []Action
	rec := func(a Action) Handler {
		return func(context.Context) (Result, error) {
			hit = append(hit, a)
			return Veto, nil
		}
	}
	m.Confirm(Options{Base: Base{ShowCloseButton: true, OnClose: rec(ActionClose), OnCancel: rec(ActionCancel)}, OnConfirm: rec(ActionConfirm)})
	m.View("")

	click(m, m.hits.confirm.x, m.hits.confirm.y)
	click(m, m.hits.cancel.x+1, m.hits.cancel.y)
	click(m, m.hits.close.x, m.hits.close.y)
	// inside the box but on no control
	click(m, m.hits.frame.x+1, m.hits.frame.y+1)
	require.Equal(t, []Action{ActionConfirm, ActionCancel, ActionClose}, hit)
}

func TestBackdropClick(t *testing.T) {
	m := sized(t)
	m.Info(Options{Base: Base{CloseOnBackdrop: Bool(false)}})
	m.View("")
	click(m, 0, 0)
	require.True(t, m.Has("key_1"))

	m.Info(Options{})
	m.View("")
	click(m, 0, 0)
	require.False(t, m.Has("key_2"))
	require.True(t, m.Has("key_1"))
}

func TestClickIgnoredWhileLoading(t *testing.T) {
	m := sized(t)
	m.Confirm(Options{OnConfirm: func(context.Context) (Result, error) { return Proceed, nil }})
	m.View("")
	pending := m.Trigger("key_1", ActionConfirm)
	m.View("")

	require.Nil(t, m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	require.Nil(t, m.Update(tea.MouseMsg{X: m.hits.cancel.x, Y: m.hits.cancel.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	require.True(t, m.Has("key_1"))
	drain(m, pending)
	require.False(t, m.Has("key_1"))
}

func TestOverlayAt(t *testing.T) {
	base := "aaaaa\nbbbbb\nccccc"
	require.Equal(t, "aaaaa\nbXYbb\ncZWcc", Overlay(base, "XY\nZW", 1, 1, 5, 3))
	// clipped at the right edge and bottom
	require.Equal(t, "aaaaa\nbbbbb\ncccXY", Overlay(base, "XYZ\nQQQ", 3, 2, 5, 3))
}

func TestBackdropDims(t *testing.T) {
	out := stripped(backdrop("\x1b[31mred\x1b[0m\nlonger line here", lipgloss.NewStyle(), 6, 3))
	require.Equal(t, "red   \nlonger\n      ", out)
}
