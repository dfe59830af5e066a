// Package dialogs implements a queue of modal message boxes (info, confirm
// and prompt) for Bubble Tea programs.
//
// A Manager owns the queue. Each entry point appends one dialog and wraps
// the caller's lifecycle handlers: a handler that returns Veto keeps its
// dialog open, a handler that fails (error or panic) is logged and also keeps
// it open, and anything else removes the dialog by id. Handlers run as
// tea.Cmds, off the update goroutine; the queue itself is only touched from
// Update, so removals never race with enqueues.
package dialogs

import (
	"context"
	"errors"
)

type Kind int

const (
	KindInfo Kind = iota
	KindConfirm
	KindPrompt
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindConfirm:
		return "confirm"
	case KindPrompt:
		return "prompt"
	}
	return "unknown"
}

// Visual is the semantic type that picks a dialog's icon and accent color.
type Visual string

const (
	VisualNone    Visual = ""
	VisualSuccess Visual = "success"
	VisualInfo    Visual = "info"
	VisualWarning Visual = "warning"
	VisualError   Visual = "error"
)

// Visuals lists the non-empty visuals.
var Visuals = []Visual{VisualSuccess, VisualInfo, VisualWarning, VisualError}

// Result is what a lifecycle handler asks for. The zero value lets the
// dialog go; only an explicit Veto keeps it open.
type Result int

const (
	Proceed Result = iota
	Veto
)

func (r Result) String() string {
	if r == Veto {
		return "veto"
	}
	return "proceed"
}

type (
	// Handler is an OnClose/OnCancel callback, and OnConfirm for info and
	// confirm dialogs.
	Handler func(ctx context.Context) (Result, error)

	// InputHandler is OnConfirm for prompt dialogs; value is the current
	// field content.
	InputHandler func(ctx context.Context, value string) (Result, error)

	// Validator returns an error message for value, or "" when it is valid.
	Validator func(ctx context.Context, value string) string
)

// ErrPanic wraps a value recovered from a panicking handler or validator.
var ErrPanic = errors.New("dialog handler panicked")

type InputType string

const (
	InputText     InputType = "text"
	InputPassword InputType = "password"
	InputURL      InputType = "url"
	InputEmail    InputType = "email"
	InputNumber   InputType = "number"
)

// Base holds the options every dialog kind accepts. Pointer booleans are
// optional: nil means "use the kind's default".
type Base struct {
	Title   string
	Content string
	Visual  Visual
	// Icon replaces the icon Visual would pick.
	Icon     string
	MinWidth int

	ShowCloseButton   bool
	ShowCancelButton  *bool
	ShowConfirmButton *bool

	CancelText         string
	ConfirmText        string
	ConfirmLoadingText string
	// ConfirmColor names a palette accent ("primary", "success", ...).
	// Defaults to Visual, then primary.
	ConfirmColor string

	CloseOnBackdrop *bool
	CloseOnEscape   *bool

	OnClose  Handler
	OnCancel Handler
}

// Options configures Info and Confirm.
type Options struct {
	Base
	OnConfirm Handler
}

// PromptOptions configures Prompt.
type PromptOptions struct {
	Base
	InputValue       string
	InputType        InputType
	InputLabel       string
	InputPlaceholder string
	Validate         Validator
	OnConfirm        InputHandler
}

// InputSpec is the resolved input block of a prompt.
type InputSpec struct {
	Value       string
	Type        InputType
	Label       string
	Placeholder string
	Validate    Validator
}

// Descriptor is the resolved, immutable configuration of one queued dialog.
type Descriptor struct {
	ID   string
	Kind Kind
	// Open is true for as long as the descriptor is queued.
	Open bool

	Title    string
	Content  string
	Visual   Visual
	Icon     string
	MinWidth int

	ShowCloseButton   bool
	ShowCancelButton  bool
	ShowConfirmButton bool

	CancelText         string
	ConfirmText        string
	ConfirmLoadingText string
	ConfirmColor       string

	CloseOnBackdrop bool
	CloseOnEscape   bool

	// Input is non-nil exactly when Kind is KindPrompt.
	Input *InputSpec
}

// Bool is a helper for the optional flags in Base.
func Bool(v bool) *bool { return &v }

const defaultMinWidth = 40

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func resolve(id string, kind Kind, b Base, cancelDefault bool) Descriptor {
	d := Descriptor{
		ID:                 id,
		Kind:               kind,
		Open:               true,
		Title:              b.Title,
		Content:            b.Content,
		Visual:             b.Visual,
		Icon:               b.Icon,
		MinWidth:           b.MinWidth,
		ShowCloseButton:    b.ShowCloseButton,
		ShowCancelButton:   boolOr(b.ShowCancelButton, cancelDefault),
		ShowConfirmButton:  boolOr(b.ShowConfirmButton, true),
		CancelText:         b.CancelText,
		ConfirmText:        b.ConfirmText,
		ConfirmLoadingText: b.ConfirmLoadingText,
		ConfirmColor:       b.ConfirmColor,
		CloseOnBackdrop:    boolOr(b.CloseOnBackdrop, true),
		CloseOnEscape:      boolOr(b.CloseOnEscape, true),
	}
	if d.MinWidth <= 0 {
		d.MinWidth = defaultMinWidth
	}
	if d.ConfirmColor == "" {
		d.ConfirmColor = string(d.Visual)
	}
	if d.ConfirmColor == "" {
		d.ConfirmColor = "primary"
	}
	return d
}

// IconFor returns the icon a descriptor shows: the explicit icon, else the
// visual's default, else nothing.
func IconFor(d Descriptor) string {
	if d.Icon != "" {
		return d.Icon
	}
	switch d.Visual {
	case VisualSuccess:
		return "✓"
	case VisualInfo:
		return "ℹ"
	case VisualWarning:
		return "!"
	case VisualError:
		return "×"
	}
	return ""
}
