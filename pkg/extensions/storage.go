package extensions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage is an extension's private key-value store, rooted at
// <extension_dir>/storage/data.json. Low-traffic by construction (a
// handful of preference-sized values per extension), so every
// operation round-trips the whole file rather than keeping a dirty-
// flag debounce like pkg/frecency's usage store does.
type Storage struct {
	mu   sync.Mutex
	path string
}

// NewStorage returns a store rooted at dir (typically
// <extension_dir>/storage).
func NewStorage(dir string) *Storage {
	return &Storage{path: filepath.Join(dir, "data.json")}
}

func (s *Storage) readAll() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]json.RawMessage{}, nil
	}
	return m, nil
}

func (s *Storage) writeAll(m map[string]json.RawMessage) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Get reads the raw JSON value stored under key. ok is false if the key
// is absent.
func (s *Storage) Get(key string) (value json.RawMessage, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.readAll()
	if err != nil {
		return nil, false, fmt.Errorf("read extension storage: %w", err)
	}
	v, ok := m[key]
	return v, ok, nil
}

// Set stores value (already JSON-encoded) under key.
func (s *Storage) Set(key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.readAll()
	if err != nil {
		return fmt.Errorf("read extension storage: %w", err)
	}
	m[key] = value
	if err := s.writeAll(m); err != nil {
		return fmt.Errorf("write extension storage: %w", err)
	}
	return nil
}

// Delete removes key, if present.
func (s *Storage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.readAll()
	if err != nil {
		return fmt.Errorf("read extension storage: %w", err)
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	if err := s.writeAll(m); err != nil {
		return fmt.Errorf("write extension storage: %w", err)
	}
	return nil
}
