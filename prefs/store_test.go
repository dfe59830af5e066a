package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFileMissingIsEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := OpenFile(dir)
	require.NoError(t, err)

	_, ok := s.Get("colorMode")
	assert.False(t, ok)
	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "file must not be created until Set")
}

func TestFileStoreRoundTripAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFile(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("colorMode", "dark"))
	require.NoError(t, s.Set("lang", "zh_CN"))

	reopened, err := OpenFile(dir)
	require.NoError(t, err)
	v, ok := reopened.Get("colorMode")
	require.True(t, ok)
	assert.Equal(t, "dark", v)
	v, _ = reopened.Get("lang")
	assert.Equal(t, "zh_CN", v)
}

func TestFileStoreRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("colorMode = "), 0o644))

	_, err := OpenFile(dir)
	require.Error(t, err)
}

func TestFileStoreReadOnly(t *testing.T) {
	s, err := OpenFile(t.TempDir())
	require.NoError(t, err)
	s.ReadOnly()

	err = s.Set("colorMode", "light")
	require.ErrorIs(t, err, ErrReadOnly)
	_, ok := s.Get("colorMode")
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(map[string]string{"lang": "en_US"})
	v, ok := s.Get("lang")
	require.True(t, ok)
	assert.Equal(t, "en_US", v)

	require.NoError(t, s.Set("colorMode", "system"))
	v, _ = s.Get("colorMode")
	assert.Equal(t, "system", v)

	s.SetErr = ErrReadOnly
	assert.ErrorIs(t, s.Set("colorMode", "dark"), ErrReadOnly)
	v, _ = s.Get("colorMode")
	assert.Equal(t, "system", v)
}
