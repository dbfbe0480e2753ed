// Package prefs provides the persisted key-value Preference Store that
// backs every homedeck widget. Keys are namespaced strings, values are
// JSON. The store is synchronous: reads come from an in-memory index
// loaded at Open, writes flush to disk immediately via atomic
// temp-file-then-rename. Two concurrent writes to the same key apply
// last-write-wins in call order.
package prefs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is the read/write surface widgets depend on. DiskStore is the
// production implementation; MemStore is the in-memory test double.
type Store interface {
	// GetRaw returns the stored JSON for key, or false if the key has
	// never been written (or its stored data could not be read back).
	GetRaw(key string) (json.RawMessage, bool)

	// SetRaw stores raw under key, replacing any prior value.
	SetRaw(key string, raw json.RawMessage) error

	// Remove clears a single entry. Removing an absent key is a no-op.
	Remove(key string) error

	// Reset clears every entry. Irreversible.
	Reset() error

	// Keys returns all stored keys in sorted order.
	Keys() []string
}

// DiskStore persists one JSON file per key under a single directory.
// The full contents are loaded at Open so reads never touch the disk;
// every write rewrites the key's file atomically.
type DiskStore struct {
	dir string

	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// Open creates (if needed) and loads a DiskStore rooted at dir. Files
// that do not parse as JSON are skipped and their keys treated as
// absent; corruption is logged, never fatal.
func Open(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("prefs: create directory %s: %w", dir, err)
	}

	s := &DiskStore{
		dir:     dir,
		entries: make(map[string]json.RawMessage),
	}
	if err := s.scanDir(); err != nil {
		return nil, fmt.Errorf("prefs: scan directory: %w", err)
	}
	return s, nil
}

// Dir returns the directory backing this store.
func (s *DiskStore) Dir() string {
	return s.dir
}

// GetRaw implements Store.
func (s *DiskStore) GetRaw(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

// SetRaw implements Store. The value is validated as JSON before it is
// written so a malformed caller cannot poison the on-disk state.
func (s *DiskStore) SetRaw(key string, raw json.RawMessage) error {
	if !json.Valid(raw) {
		return fmt.Errorf("prefs: value for %q is not valid JSON", key)
	}
	if err := validKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := atomicWrite(s.entryPath(key), raw, s.dir); err != nil {
		return fmt.Errorf("prefs: write %q: %w", key, err)
	}

	// Keep our own copy; callers may mutate the slice they handed us.
	cp := make(json.RawMessage, len(raw))
	copy(cp, raw)
	s.entries[key] = cp
	return nil
}

// Remove implements Store.
func (s *DiskStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	if err := os.Remove(s.entryPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("prefs: remove %q: %w", key, err)
	}
	return nil
}

// Reset implements Store. All entry files are deleted along with any
// leftover temp files from interrupted writes.
func (s *DiskStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.entries = make(map[string]json.RawMessage)
			return nil
		}
		return fmt.Errorf("prefs: reset read dir: %w", err)
	}

	for _, e := range dirents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".tmp-") {
			_ = os.Remove(filepath.Join(s.dir, name))
		}
	}

	s.entries = make(map[string]json.RawMessage)
	return nil
}

// Keys implements Store.
func (s *DiskStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.entries)
}

// --- internal helpers ---

func (s *DiskStore) entryPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// validKey rejects keys that would escape the store directory or
// produce surprising filenames. Canonical keys (see keys.go) are all
// lowercase slugs, so this only bites foreign callers.
func validKey(key string) error {
	if key == "" {
		return fmt.Errorf("prefs: empty key")
	}
	if strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return fmt.Errorf("prefs: invalid key %q", key)
	}
	return nil
}

// scanDir loads every *.json entry into the in-memory index. Entries
// that fail to read or parse are skipped; a later SetRaw on the same
// key overwrites the bad file.
func (s *DiskStore) scanDir() error {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, e := range dirents {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		key := strings.TrimSuffix(name, ".json")

		raw, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			slog.Warn("prefs: unreadable entry, treating as absent", "key", key, "err", err)
			continue
		}
		if !json.Valid(raw) {
			slog.Warn("prefs: corrupt entry, treating as absent", "key", key)
			continue
		}
		s.entries[key] = json.RawMessage(raw)
	}
	return nil
}

// atomicWrite writes data to path via a temporary file and rename.
func atomicWrite(path string, data []byte, tmpDir string) error {
	tmp, err := os.CreateTemp(tmpDir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}
