package prefs

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Get deserializes the stored JSON for key into T. Returns the zero
// value of T and false if the key is absent or the stored data does
// not decode into T; a widget falls back to its documented default in
// either case.
func Get[T any](s Store, key string) (T, bool) {
	raw, ok := s.GetRaw(key)
	if !ok {
		var zero T
		return zero, false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// GetOr returns the stored value for key, or fallback when absent.
func GetOr[T any](s Store, key string, fallback T) T {
	if v, ok := Get[T](s, key); ok {
		return v
	}
	return fallback
}

// Set serializes value as JSON and stores it under key.
func Set[T any](s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("prefs: marshal value for %q: %w", key, err)
	}
	return s.SetRaw(key, raw)
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
