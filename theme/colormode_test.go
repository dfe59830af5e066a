package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/msgbox/prefs"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"light", ModeLight, false},
		{"dark", ModeDark, false},
		{"system", ModeSystem, false},
		{" Dark ", ModeDark, false},
		{"", "", true},
		{"auto", "", true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidColorMode, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewProviderFallsBackToSystem(t *testing.T) {
	tests := []struct {
		name  string
		store map[string]string
	}{
		{"absent", nil},
		{"empty", map[string]string{StorageKey: ""}},
		{"invalid", map[string]string{StorageKey: "sepia"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(prefs.NewMemoryStore(tt.store), ModeSystem)
			assert.Equal(t, ModeSystem, p.Mode())
		})
	}
}

func TestNewProviderUsesStoredMode(t *testing.T) {
	p := NewProvider(prefs.NewMemoryStore(map[string]string{StorageKey: "light"}), ModeDark)
	assert.Equal(t, ModeLight, p.Mode())
}

func TestNewProviderInvalidDefault(t *testing.T) {
	p := NewProvider(nil, ColorMode("neon"))
	assert.Equal(t, ModeSystem, p.Mode())
}

func TestSetModePersists(t *testing.T) {
	store := prefs.NewMemoryStore(nil)
	p := NewProvider(store, ModeSystem)

	require.NoError(t, p.SetMode(ModeDark))
	assert.Equal(t, ModeDark, p.Mode())
	v, ok := store.Get(StorageKey)
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	assert.ErrorIs(t, p.SetMode("blue"), ErrInvalidColorMode)
	assert.Equal(t, ModeDark, p.Mode())
}

func TestSetModeKeepsInMemoryOnWriteFailure(t *testing.T) {
	store := prefs.NewMemoryStore(nil)
	store.SetErr = errors.New("disk full")
	p := NewProvider(store, ModeSystem)

	err := p.SetMode(ModeLight)
	require.Error(t, err)
	assert.Equal(t, ModeLight, p.Mode())
}

func TestResolveSystem(t *testing.T) {
	dark := true
	p := NewProvider(nil, ModeSystem, WithDarkDetector(func() bool { return dark }))
	assert.Equal(t, ModeDark, p.Resolve())
	assert.Equal(t, "dark", p.Palette().Name)

	dark = false
	assert.Equal(t, ModeLight, p.Resolve())
	assert.Equal(t, "light", p.Palette().Name)

	require.NoError(t, p.SetMode(ModeDark))
	assert.Equal(t, ModeDark, p.Resolve())
}

func TestPaletteAccent(t *testing.T) {
	assert.Equal(t, Dark.Error, Dark.Accent("error"))
	assert.Equal(t, Dark.Warning, Dark.Accent("warn"))
	assert.Equal(t, Dark.Primary, Dark.Accent(""))
	assert.Equal(t, Light.Success, Light.Accent("success"))
}
