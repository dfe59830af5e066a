package dialogs

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/msgbox/logging"
	"github.com/andareed/msgbox/theme"
)

// Action names the lifecycle handler a resolution belongs to.
type Action int

const (
	ActionClose Action = iota
	ActionCancel
	ActionConfirm
)

func (a Action) String() string {
	switch a {
	case ActionClose:
		return "close"
	case ActionCancel:
		return "cancel"
	case ActionConfirm:
		return "confirm"
	}
	return "unknown"
}

// Logger receives handler failures.
type Logger interface {
	Printf(format string, args ...any)
}

// Translator supplies default button labels.
type Translator interface {
	T(key string, pairs ...string) string
}

// --- Messages ---------------------------------------------------------------

type (
	// resolvedMsg carries the outcome of a wrapped handler back to Update.
	resolvedMsg struct {
		id     string
		action Action
		remove bool
		err    error
		// invalid is the validation message when a prompt confirm was
		// rejected before reaching OnConfirm.
		invalid string
	}

	validatedMsg struct {
		id      string
		seq     uint64
		message string
		err     error
	}

	// RemovedMsg is emitted after a dialog left the queue.
	RemovedMsg struct {
		ID     string
		Action Action
	}
)

type entry struct {
	desc      Descriptor
	onClose   Handler
	onCancel  Handler
	onConfirm InputHandler
	box       *box
}

// Manager is the single source of truth for the visible dialogs. It is not
// safe for concurrent use: call it from the Bubble Tea update loop only.
type Manager struct {
	ctx          context.Context
	logger       Logger
	nextID       func() string
	tr           Translator
	palette      func() theme.Palette
	keys         KeyMap
	staticCursor bool

	queue []*entry
	focus string

	width, height int
	hits          hitMap
}

type Option func(*Manager)

// WithContext sets the context handed to every handler and validator.
func WithContext(ctx context.Context) Option {
	return func(m *Manager) { m.ctx = ctx }
}

func WithLogger(l Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithIDGenerator replaces the per-manager counter. Generated ids must be
// unique for as long as the dialog is queued.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) { m.nextID = fn }
}

func WithTranslator(tr Translator) Option {
	return func(m *Manager) { m.tr = tr }
}

func WithPalette(fn func() theme.Palette) Option {
	return func(m *Manager) { m.palette = fn }
}

func WithKeyMap(k KeyMap) Option {
	return func(m *Manager) { m.keys = k }
}

// WithStaticCursor disables cursor blinking in prompt fields.
func WithStaticCursor() Option {
	return func(m *Manager) { m.staticCursor = true }
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		ctx:     context.Background(),
		logger:  logging.Logger{},
		tr:      defaultLabels{},
		palette: func() theme.Palette { return theme.Dark },
		keys:    Keys,
	}
	m.nextID = counter("key_")
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func counter(prefix string) func() string {
	var n uint64
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// --- Entry points -----------------------------------------------------------

// Info queues an info dialog: confirm button shown, cancel hidden, unless
// opts override either.
func (m *Manager) Info(opts Options) tea.Cmd {
	return m.enqueue(KindInfo, opts.Base, false, nil, dropValue(opts.OnConfirm))
}

// Confirm is Info with the cancel button shown by default.
func (m *Manager) Confirm(opts Options) tea.Cmd {
	return m.enqueue(KindConfirm, opts.Base, true, nil, dropValue(opts.OnConfirm))
}

// Prompt queues a dialog with a single-line input. OnConfirm receives the
// field value at the time of confirmation.
func (m *Manager) Prompt(opts PromptOptions) tea.Cmd {
	in := &InputSpec{
		Value:       opts.InputValue,
		Type:        opts.InputType,
		Label:       opts.InputLabel,
		Placeholder: opts.InputPlaceholder,
		Validate:    opts.Validate,
	}
	if in.Type == "" {
		in.Type = InputText
	}
	return m.enqueue(KindPrompt, opts.Base, true, in, opts.OnConfirm)
}

func dropValue(h Handler) InputHandler {
	if h == nil {
		return nil
	}
	return func(ctx context.Context, _ string) (Result, error) { return h(ctx) }
}

func (m *Manager) enqueue(kind Kind, b Base, cancelDefault bool, in *InputSpec, onConfirm InputHandler) tea.Cmd {
	id := m.nextID()
	d := resolve(id, kind, b, cancelDefault)
	d.Input = in

	e := &entry{
		desc:      d,
		onClose:   b.OnClose,
		onCancel:  b.OnCancel,
		onConfirm: onConfirm,
		box:       newBox(d, m.staticCursor),
	}
	m.queue = append(m.queue, e)
	logging.Debugf("dialogs: queued %s (%s), %d open", id, kind, len(m.queue))

	openCmd := e.box.open()
	if prev := m.entry(m.focus); prev != nil {
		prev.box.deactivate()
	}
	m.focus = id
	return openCmd
}

// --- Queries ----------------------------------------------------------------

func (m *Manager) Len() int { return len(m.queue) }

// Descriptors returns the queued descriptors in insertion order.
func (m *Manager) Descriptors() []Descriptor {
	out := make([]Descriptor, len(m.queue))
	for i, e := range m.queue {
		out[i] = e.desc
	}
	return out
}

func (m *Manager) Has(id string) bool { return m.entry(id) != nil }

// Focused returns the id of the dialog receiving keys, or "".
func (m *Manager) Focused() string { return m.focus }

// Loading reports whether the dialog is waiting on its confirm handler.
func (m *Manager) Loading(id string) bool {
	e := m.entry(id)
	return e != nil && e.box.loading
}

// Value returns the current field content of a prompt dialog.
func (m *Manager) Value(id string) string {
	if e := m.entry(id); e != nil {
		return e.box.value()
	}
	return ""
}

// ValidationError returns the inline error shown under a prompt field.
func (m *Manager) ValidationError(id string) string {
	if e := m.entry(id); e != nil {
		return e.box.errMsg
	}
	return ""
}

func (m *Manager) entry(id string) *entry {
	if id == "" {
		return nil
	}
	for _, e := range m.queue {
		if e.desc.ID == id {
			return e
		}
	}
	return nil
}

func (m *Manager) index(id string) int {
	for i, e := range m.queue {
		if e.desc.ID == id {
			return i
		}
	}
	return -1
}

// Remove drops a dialog by id, leaving every other entry and its order
// untouched. It reports whether the id was queued.
func (m *Manager) Remove(id string) bool {
	kept := m.queue[:0:0]
	var removed *entry
	for _, e := range m.queue {
		if e.desc.ID == id {
			removed = e
			continue
		}
		kept = append(kept, e)
	}
	if removed == nil {
		return false
	}
	removed.box.reset()
	m.queue = kept
	if m.focus == id {
		m.focus = ""
		if n := len(m.queue); n > 0 {
			m.focus = m.queue[n-1].desc.ID
		}
	}
	logging.Debugf("dialogs: removed %s, %d open", id, len(m.queue))
	return true
}

// FocusNext moves keyboard focus through the queue (step +1 or -1).
func (m *Manager) FocusNext(step int) tea.Cmd {
	n := len(m.queue)
	if n < 2 {
		return nil
	}
	i := m.index(m.focus)
	if i < 0 {
		i = n - 1
	}
	next := m.queue[((i+step)%n+n)%n]
	if cur := m.entry(m.focus); cur != nil {
		cur.box.deactivate()
	}
	m.focus = next.desc.ID
	return next.box.activate()
}

// --- Update -----------------------------------------------------------------

// Update handles keys and clicks for the focused dialog plus the internal
// resolution messages. Keys and clicks are only consumed while a dialog is
// open; callers should route input here first when Len() > 0.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return nil
	case resolvedMsg:
		return m.handleResolved(msg)
	case validatedMsg:
		m.handleValidated(msg)
		return nil
	case spinner.TickMsg:
		for _, e := range m.queue {
			if e.box.spinner.ID() == msg.ID {
				return e.box.tick(msg)
			}
		}
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Manager) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(m.queue) == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.NextDialog):
		return m.FocusNext(1)
	case key.Matches(msg, m.keys.PrevDialog):
		return m.FocusNext(-1)
	}

	e := m.entry(m.focus)
	if e == nil {
		return nil
	}
	in, edited, cmd := e.box.handleKey(msg, m.keys)
	var cmds []tea.Cmd
	cmds = append(cmds, cmd)
	if edited {
		cmds = append(cmds, m.validateLive(e))
	}
	cmds = append(cmds, m.trigger(e, in))
	return tea.Batch(cmds...)
}

// Trigger performs an action on a dialog as if its button was pressed.
// It is ignored while the dialog is loading.
func (m *Manager) Trigger(id string, a Action) tea.Cmd {
	e := m.entry(id)
	if e == nil || e.box.loading {
		return nil
	}
	switch a {
	case ActionClose:
		return m.trigger(e, intentClose)
	case ActionCancel:
		return m.trigger(e, intentCancel)
	case ActionConfirm:
		return m.trigger(e, intentConfirm)
	}
	return nil
}

func (m *Manager) trigger(e *entry, in intent) tea.Cmd {
	switch in {
	case intentClose:
		return m.run(e.desc.ID, ActionClose, e.onClose)
	case intentCancel:
		return m.run(e.desc.ID, ActionCancel, e.onCancel)
	case intentConfirm:
		return m.submit(e)
	}
	return nil
}

// submit starts the confirm path. Prompts are validated first; a value
// already known to be invalid never leaves the idle state.
func (m *Manager) submit(e *entry) tea.Cmd {
	if e.desc.Input != nil && e.box.errMsg != "" && e.box.checkedSeq == e.box.validateSeq {
		logging.Debugf("dialogs: %s confirm blocked by %q", e.desc.ID, e.box.errMsg)
		return nil
	}

	id, value, ctx := e.desc.ID, e.box.value(), m.ctx
	var validate Validator
	if e.desc.Input != nil {
		validate = e.desc.Input.Validate
	}
	onConfirm := e.onConfirm

	spin := e.box.startSubmit()
	return tea.Batch(spin, func() tea.Msg {
		if validate != nil {
			msg, err := validateSafely(ctx, validate, value)
			if err != nil {
				return resolvedMsg{id: id, action: ActionConfirm, err: err}
			}
			if msg != "" {
				return resolvedMsg{id: id, action: ActionConfirm, invalid: msg}
			}
		}
		if onConfirm == nil {
			return resolvedMsg{id: id, action: ActionConfirm, remove: true}
		}
		return resolution(ctx, id, ActionConfirm, func(ctx context.Context) (Result, error) {
			return onConfirm(ctx, value)
		})
	})
}

// run wraps an OnClose/OnCancel handler into a command.
func (m *Manager) run(id string, action Action, h Handler) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg { return resolution(ctx, id, action, h) }
}

// resolution is the trust boundary around caller code: no handler means
// remove, Veto means keep, an error or a panic means keep and report.
func resolution(ctx context.Context, id string, action Action, h Handler) resolvedMsg {
	if h == nil {
		return resolvedMsg{id: id, action: action, remove: true}
	}
	res, err := callSafely(ctx, h)
	if err != nil {
		return resolvedMsg{id: id, action: action, err: err}
	}
	return resolvedMsg{id: id, action: action, remove: res != Veto}
}

func callSafely(ctx context.Context, h Handler) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return h(ctx)
}

func validateSafely(ctx context.Context, validate Validator, value string) (msg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return validate(ctx, value), nil
}

func (m *Manager) validateLive(e *entry) tea.Cmd {
	if e.desc.Input == nil || e.desc.Input.Validate == nil {
		return nil
	}
	e.box.validateSeq++
	id, seq := e.desc.ID, e.box.validateSeq
	validate, value, ctx := e.desc.Input.Validate, e.box.value(), m.ctx
	return func() tea.Msg {
		msg, err := validateSafely(ctx, validate, value)
		return validatedMsg{id: id, seq: seq, message: msg, err: err}
	}
}

func (m *Manager) handleValidated(msg validatedMsg) {
	e := m.entry(msg.id)
	if e == nil || msg.seq != e.box.validateSeq {
		return
	}
	if msg.err != nil {
		m.logger.Printf("dialog %s: validate failed: %v", msg.id, msg.err)
		return
	}
	e.box.errMsg = msg.message
	e.box.checkedSeq = msg.seq
}

func (m *Manager) handleResolved(msg resolvedMsg) tea.Cmd {
	e := m.entry(msg.id)
	if e == nil {
		// already removed by an earlier resolution
		return nil
	}
	if msg.action == ActionConfirm {
		e.box.finish()
	}

	switch {
	case msg.err != nil:
		m.logger.Printf("dialog %s: %s handler failed: %v", msg.id, msg.action, msg.err)
		return nil
	case msg.invalid != "":
		e.box.errMsg = msg.invalid
		return nil
	case !msg.remove:
		logging.Debugf("dialogs: %s %s vetoed", msg.id, msg.action)
		return nil
	}

	if msg.action == ActionConfirm {
		e.box.errMsg = ""
	}
	m.Remove(msg.id)
	var cmd tea.Cmd
	if next := m.entry(m.focus); next != nil {
		cmd = next.box.activate()
	}
	removed := RemovedMsg{ID: msg.id, Action: msg.action}
	return tea.Batch(cmd, func() tea.Msg { return removed })
}

// defaultLabels is used when no Translator is configured.
type defaultLabels struct{}

func (defaultLabels) T(key string, pairs ...string) string {
	switch key {
	case "dialog.action.cancel":
		return "Cancel"
	case "dialog.action.confirm":
		return "Confirm"
	case "dialog.action.close":
		return "Close"
	case "dialog.hint.idle":
		return "enter confirm · esc close · tab move"
	case "dialog.hint.loading":
		return "working…"
	case "dialog.hint.stack":
		count := "?"
		if len(pairs) == 2 && pairs[0] == "count" {
			count = pairs[1]
		}
		return "ctrl+n/ctrl+p switch dialog (" + count + " open)"
	}
	return key
}
