// Package preset defines named dashboard arrangements. A preset is a
// list of rows, each naming the widgets it holds left-to-right; the
// resolver turns a preset into concrete screen rectangles.
package preset

import (
	"fmt"
	"sort"
	"sync"
)

// Preset is a named widget arrangement.
type Preset struct {
	Name string
	// Rows lists widget IDs per dashboard row, top to bottom.
	Rows [][]string
	// RowWeights optionally overrides the vertical share of each
	// row. Missing or zero entries default to 1.
	RowWeights []int
}

// Widgets returns every widget ID the preset references, in order.
func (p Preset) Widgets() []string {
	var ids []string
	for _, row := range p.Rows {
		ids = append(ids, row...)
	}
	return ids
}

// Has reports whether the preset places the given widget.
func (p Preset) Has(id string) bool {
	for _, row := range p.Rows {
		for _, w := range row {
			if w == id {
				return true
			}
		}
	}
	return false
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Preset{}
)

// Register adds or replaces a preset by name.
func Register(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset has no name")
	}
	if len(p.Rows) == 0 {
		return fmt.Errorf("preset %q has no rows", p.Name)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.Name] = p
	return nil
}

// Get returns the preset with the given name, falling back to the
// default arrangement for unknown names.
func Get(name string) Preset {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if p, ok := registry[name]; ok {
		return p
	}
	return registry[DefaultName]
}

// Names returns all registered preset names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
