package dialogs

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestCursorMoveDropsSelection(t *testing.T) {
	m, _ := newTestManager(t)
	m.Prompt(PromptOptions{InputValue: "https://"})
	e := m.entry("key_1")
	require.True(t, e.box.selected)

	// moving the cursor keeps the text and drops the selection
	press(m, tea.KeyLeft)
	require.False(t, e.box.selected)
	require.Equal(t, "https://", m.Value("key_1"))
}

func TestSelectionBackspaceClears(t *testing.T) {
	m, _ := newTestManager(t)
	m.Prompt(PromptOptions{InputValue: "abc"})
	press(m, tea.KeyBackspace)
	require.Empty(t, m.Value("key_1"))
	typeText(m, "d")
	require.Equal(t, "d", m.Value("key_1"))
}

func TestNumberInputFiltersRunes(t *testing.T) {
	m, _ := newTestManager(t)
	m.Prompt(PromptOptions{InputType: InputNumber})
	typeText(m, "1a2.5x")
	require.Equal(t, "12.5", m.Value("key_1"))
}

func TestPasswordInputMasks(t *testing.T) {
	m := sized(t)
	m.Prompt(PromptOptions{InputType: InputPassword})
	typeText(m, "secret")
	require.Equal(t, "secret", m.Value("key_1"))
	out := stripped(m.View(""))
	require.NotContains(t, out, "secret")
	require.Contains(t, out, "••••••")
}

func TestTabCyclesPromptFocus(t *testing.T) {
	m, _ := newTestManager(t)
	var got string
	m.Prompt(PromptOptions{
		InputValue: "v",
		Base: Base{OnCancel: func(context.Context) (Result, error) {
			got = "cancel"
			return Proceed, nil
		}},
	})
	e := m.entry("key_1")
	require.Equal(t, focusInput, e.box.focus)

	press(m, tea.KeyTab)
	require.Equal(t, focusCancel, e.box.focus)
	// typing does nothing while a button is focused
	typeText(m, "zz")
	require.Equal(t, "v", m.Value("key_1"))

	press(m, tea.KeyShiftTab)
	require.Equal(t, focusInput, e.box.focus)
	press(m, tea.KeyShiftTab)
	require.Equal(t, focusConfirm, e.box.focus)
	press(m, tea.KeyLeft)
	require.Equal(t, focusCancel, e.box.focus)
	press(m, tea.KeyEnter)
	require.Equal(t, "cancel", got)
	require.False(t, m.Has("key_1"))
}

func TestSpinnerOnlyTicksWhileLoading(t *testing.T) {
	m, _ := newTestManager(t)
	m.Info(Options{})
	e := m.entry("key_1")
	require.Nil(t, m.Update(e.box.spinner.Tick()))

	cmd := m.Trigger("key_1", ActionConfirm)
	require.True(t, e.box.loading)
	require.NotNil(t, m.Update(e.box.spinner.Tick()))
	drain(m, cmd)
	require.False(t, m.Has("key_1"))
}
