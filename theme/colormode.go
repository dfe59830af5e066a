// Package theme holds the light/dark/system color-mode preference and the
// palettes derived from it.
package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/andareed/msgbox/logging"
)

type ColorMode string

const (
	ModeLight  ColorMode = "light"
	ModeDark   ColorMode = "dark"
	ModeSystem ColorMode = "system"
)

// StorageKey is the preference key the mode is kept under.
const StorageKey = "colorMode"

var ErrInvalidColorMode = errors.New("invalid color mode")

// Modes lists the modes in toggle order.
var Modes = []ColorMode{ModeSystem, ModeLight, ModeDark}

func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	case ModeSystem:
		return ModeSystem, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
}

// Storage is the get/set-by-key preference backend.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Provider owns the current mode. Safe for concurrent use.
type Provider struct {
	mu      sync.RWMutex
	mode    ColorMode
	storage Storage
	isDark  func() bool
}

type ProviderOption func(*Provider)

// WithDarkDetector replaces the terminal background probe used for system mode.
func WithDarkDetector(fn func() bool) ProviderOption {
	return func(p *Provider) { p.isDark = fn }
}

// NewProvider loads the stored mode. A missing or unreadable value falls
// back to def, and an invalid def falls back to system.
func NewProvider(storage Storage, def ColorMode, opts ...ProviderOption) *Provider {
	if _, err := ParseColorMode(string(def)); err != nil {
		def = ModeSystem
	}
	p := &Provider{
		mode:    def,
		storage: storage,
		isDark:  termenv.HasDarkBackground,
	}
	for _, opt := range opts {
		opt(p)
	}
	if storage != nil {
		if raw, ok := storage.Get(StorageKey); ok {
			if m, err := ParseColorMode(raw); err == nil {
				p.mode = m
			} else {
				logging.Warnf("theme: ignoring stored color mode %q", raw)
			}
		}
	}
	return p
}

func (p *Provider) Mode() ColorMode {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

// SetMode switches the mode and persists it. The in-memory mode changes even
// when the write fails; the error is returned for the caller to surface.
func (p *Provider) SetMode(m ColorMode) error {
	if _, err := ParseColorMode(string(m)); err != nil {
		return err
	}
	p.mu.Lock()
	p.mode = m
	p.mu.Unlock()

	if p.storage == nil {
		return nil
	}
	if err := p.storage.Set(StorageKey, string(m)); err != nil {
		logging.Warnf("theme: persist color mode: %v", err)
		return fmt.Errorf("persist color mode: %w", err)
	}
	return nil
}

// Resolve maps system onto light or dark.
func (p *Provider) Resolve() ColorMode {
	m := p.Mode()
	if m != ModeSystem {
		return m
	}
	if p.isDark() {
		return ModeDark
	}
	return ModeLight
}

// Palette returns the palette for the resolved mode.
func (p *Provider) Palette() Palette {
	if p.Resolve() == ModeLight {
		return Light
	}
	return Dark
}
