package main

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/andareed/msgbox/clipboard"
	"github.com/andareed/msgbox/config"
	"github.com/andareed/msgbox/dialogs"
	"github.com/andareed/msgbox/i18n"
	"github.com/andareed/msgbox/logging"
	"github.com/andareed/msgbox/theme"
	"github.com/andareed/msgbox/toast"
)

type model struct {
	ctx    context.Context
	cancel context.CancelFunc

	store theme.Storage
	modes *theme.Provider
	tr    *i18n.Translator

	dialogs *dialogs.Manager
	toasts  *toast.Stack
	about   *aboutPage
	ui      uiState
	ready   bool

	// send delivers messages from handler goroutines; main sets it to p.Send.
	send  func(tea.Msg)
	copy  func(string) error
	delay time.Duration
}

// liveTranslator lets the dialogs follow language switches.
type liveTranslator struct{ m *model }

func (l liveTranslator) T(key string, pairs ...string) string { return l.m.tr.T(key, pairs...) }

func newModel(cfg config.Config, store theme.Storage, modes *theme.Provider, tr *i18n.Translator, opts ...dialogs.Option) *model {
	ctx, cancel := context.WithCancel(context.Background())
	m := &model{
		ctx:    ctx,
		cancel: cancel,
		store:  store,
		modes:  modes,
		tr:     tr,
		toasts: toast.New(cfg.UI.MaxToasts, cfg.UI.ToastDuration),
		about:  newAboutPage(),
		send:   func(tea.Msg) {},
		copy:   clipboard.Copy,
		delay:  cfg.UI.HandlerDelay,
	}
	base := []dialogs.Option{
		dialogs.WithContext(ctx),
		dialogs.WithLogger(logging.Logger{}),
		dialogs.WithIDGenerator(uuid.NewString),
		dialogs.WithTranslator(liveTranslator{m}),
		dialogs.WithPalette(modes.Palette),
	}
	m.dialogs = dialogs.NewManager(append(base, opts...)...)
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("msgbox: initialised lang=%s mode=%s", m.tr.Lang(), m.modes.Mode())
	return tea.SetWindowTitle(m.tr.T("app.title"))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.terminalWidth, m.ui.terminalHeight = msg.Width, msg.Height
		m.ready = true
		m.about.resize(msg.Width, m.pageHeight())
		return m, m.dialogs.Update(msg)
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if m.dialogs.Len() > 0 {
			return m, m.dialogs.Update(msg)
		}
		if m.ui.page == pageAbout {
			return m, m.about.update(msg)
		}
		return m, nil
	case urlConfirmedMsg:
		return m, m.copyCmd(msg.value)
	case copiedMsg:
		return m, m.handleCopied(msg)
	case dialogs.RemovedMsg:
		logging.Debugf("dialog %s closed via %s", msg.ID, msg.Action)
		return m, nil
	}

	if m.toasts.Update(msg) {
		return m, nil
	}
	return m, m.dialogs.Update(msg)
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, m.quit()
	}
	// an open dialog is modal
	if m.dialogs.Len() > 0 {
		return m, m.dialogs.Update(msg)
	}
	if m.ui.command.cmd != CmdNone {
		return m.handleCommandKey(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, m.quit()
	case key.Matches(msg, Keys.Command, Keys.QuickToast):
		m.ui.command = CommandInput{cmd: CommandFromPrefix(msg.Runes[0])}
		return m, nil
	case key.Matches(msg, Keys.NextPage):
		m.switchPage(1)
		return m, nil
	case key.Matches(msg, Keys.PrevPage):
		m.switchPage(-1)
		return m, nil
	case key.Matches(msg, Keys.Home):
		m.ui.page = pageHome
		return m, nil
	case key.Matches(msg, Keys.About):
		m.ui.page = pageAbout
		return m, nil
	case key.Matches(msg, Keys.CycleMode):
		return m, m.setColorMode(nextMode(m.modes.Mode()))
	case key.Matches(msg, Keys.CycleLang):
		return m, m.setLanguage(nextLang(m.tr.Lang()))
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openHelp()
	}

	if m.ui.page == pageAbout {
		return m, m.about.handleKey(msg)
	}
	return m.handleHomeKey(msg)
}

func (m *model) switchPage(step int) {
	i := slices.Index(pages, m.ui.page)
	m.ui.page = pages[(i+step+len(pages))%len(pages)]
}

func nextMode(cur theme.ColorMode) theme.ColorMode {
	i := slices.Index(theme.Modes, cur)
	return theme.Modes[(i+1)%len(theme.Modes)]
}

func nextLang(cur string) string {
	i := slices.Index(i18n.Supported, cur)
	return i18n.Supported[(i+1)%len(i18n.Supported)]
}

// setColorMode applies mode right away. A failed write is reported but the
// mode stays in effect for this session.
func (m *model) setColorMode(mode theme.ColorMode) tea.Cmd {
	if err := m.modes.SetMode(mode); err != nil {
		logging.Warnf("color mode: %v", err)
		return m.notify(toast.Error, m.tr.T("toast.modeSaveFailed", "error", err.Error()))
	}
	logging.Debugf("color mode: %s (resolved %s)", mode, m.modes.Resolve())
	return nil
}

func (m *model) setLanguage(lang string) tea.Cmd {
	tr, err := i18n.New(lang)
	if err != nil {
		logging.Errorf("language %q: %v", lang, err)
		return m.notify(toast.Error, err.Error())
	}
	m.tr = tr
	changed := m.notify(toast.Info, tr.T("toast.langChanged", "lang", tr.Lang()))
	if err := m.store.Set(i18n.StorageKey, tr.Lang()); err != nil {
		logging.Warnf("language: %v", err)
		return tea.Batch(changed, m.notify(toast.Warning, tr.T("toast.langSaveFailed", "error", err.Error())))
	}
	return changed
}

// quit cancels the context handed to dialog handlers and stops the program.
func (m *model) quit() tea.Cmd {
	m.cancel()
	logging.Infof("msgbox: quit with %d dialog(s) open", m.dialogs.Len())
	return tea.Quit
}

// pageHeight is the space left between the tab header and the footer.
func (m *model) pageHeight() int {
	return max(0, m.ui.terminalHeight-headerHeight-footerHeight)
}
