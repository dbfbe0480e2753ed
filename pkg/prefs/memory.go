package prefs

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store with no durability. It exists so
// widget and app tests can run against the same interface the disk
// store implements without touching the filesystem.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]json.RawMessage)}
}

// GetRaw implements Store.
func (s *MemStore) GetRaw(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.entries[key]
	return raw, ok
}

// SetRaw implements Store.
func (s *MemStore) SetRaw(key string, raw json.RawMessage) error {
	if !json.Valid(raw) {
		return fmt.Errorf("prefs: value for %q is not valid JSON", key)
	}
	if err := validKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(json.RawMessage, len(raw))
	copy(cp, raw)
	s.entries[key] = cp
	return nil
}

// Remove implements Store.
func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Reset implements Store.
func (s *MemStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]json.RawMessage)
	return nil
}

// Keys implements Store.
func (s *MemStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.entries)
}
