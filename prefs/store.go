// Package prefs persists small string preferences (color mode, language)
// the way a browser keeps them in local storage: a flat key/value map.
package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/andareed/msgbox/logging"
)

const (
	appDirName = "msgbox"
	fileName   = "prefs.toml"
)

var ErrReadOnly = errors.New("prefs: store is read-only")

// Store is the get/set-by-key contract shared by every backend.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// DefaultDir returns <user config dir>/msgbox.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, appDirName), nil
}

// FileStore keeps preferences in a TOML file. It is safe for concurrent use.
type FileStore struct {
	mu       sync.Mutex
	path     string
	values   map[string]string
	readOnly bool
}

// OpenFile loads <dir>/prefs.toml. A missing file yields an empty store; the
// file is only created on the first Set.
func OpenFile(dir string) (*FileStore, error) {
	s := &FileStore{
		path:   filepath.Join(dir, fileName),
		values: make(map[string]string),
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Debugf("prefs: %s not found, starting empty", s.path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	if _, err := toml.Decode(string(data), &s.values); err != nil {
		return nil, fmt.Errorf("decode prefs %s: %w", s.path, err)
	}
	return s, nil
}

// ReadOnly stops Set from touching disk. Used for --no-save style runs.
func (s *FileStore) ReadOnly() *FileStore {
	s.mu.Lock()
	s.readOnly = true
	s.mu.Unlock()
	return s
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readOnly {
		return ErrReadOnly
	}

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return err
	}
	logging.Debugf("prefs: %s=%s", key, value)
	return nil
}

// flush writes via temp file + rename so a crash never leaves half a file.
func (s *FileStore) flush() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.values); err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

// MemoryStore is a map-backed Store, mostly for tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	// SetErr, when non-nil, is returned by every Set.
	SetErr error
}

func NewMemoryStore(seed map[string]string) *MemoryStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MemoryStore{values: values}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.values[key] = value
	return nil
}
