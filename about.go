package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/andareed/msgbox/i18n"
	"github.com/andareed/msgbox/logging"
	"github.com/andareed/msgbox/theme"
)

const aboutCacheSize = 16

// aboutPage renders the markdown about text and a counter.
type aboutPage struct {
	viewport viewport.Model
	// rendered markdown keyed by lang/mode/width
	cache   *lru.Cache[string, string]
	counter int
}

func newAboutPage() *aboutPage {
	cache, err := lru.New[string, string](aboutCacheSize)
	if err != nil {
		panic(err)
	}
	return &aboutPage{viewport: viewport.New(0, 0), cache: cache}
}

func (a *aboutPage) resize(width, height int) {
	a.viewport.Width = width
	a.viewport.Height = height
}

func (a *aboutPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, Keys.Counter) {
		a.counter++
		return nil
	}
	return a.update(msg)
}

func (a *aboutPage) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return cmd
}

// markdown renders the about body with the style that matches mode.
// Failures fall back to the raw text.
func (a *aboutPage) markdown(tr *i18n.Translator, mode theme.ColorMode, width int) string {
	cacheKey := fmt.Sprintf("%s/%s/%d", tr.Lang(), mode, width)
	if s, ok := a.cache.Get(cacheKey); ok {
		return s
	}
	body := tr.T("about.body")
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(mode)),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		logging.Warnf("about: renderer: %v", err)
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		logging.Warnf("about: render: %v", err)
		return body
	}
	a.cache.Add(cacheKey, out)
	return out
}

func (a *aboutPage) View(tr *i18n.Translator, mode theme.ColorMode, st styles) string {
	counter := "  " + st.heading.Render(tr.T("about.counter")) + " " +
		st.buttonActive.Render(strconv.Itoa(a.counter)) + "  " +
		st.muted.Render(Keys.Counter.Help().Key+" "+Keys.Counter.Help().Desc)
	a.viewport.SetContent(a.markdown(tr, mode, a.viewport.Width) + "\n" + counter)
	return a.viewport.View()
}
