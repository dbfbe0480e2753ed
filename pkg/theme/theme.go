// Package theme defines homedeck's color themes. A theme carries the
// Primary and Accent colors as HSL triplets (the shape persisted under
// the "theme" preference and published in themeChanged events) plus a
// full terminal palette derived for rendering. Themes live in a
// registry keyed by lowercase name; unknown names fall back to the
// default theme, Green.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// DefaultName is the documented fallback when the "theme" preference
// is absent or names an unknown theme.
const DefaultName = "green"

// Theme is a complete dashboard palette.
type Theme struct {
	Name string

	// Primary and Accent are HSL triplets ("142 86% 28%"); they are
	// what crosses the Change Notifier when the theme switches.
	Primary string
	Accent  string

	// Terminal palette, hex colors.
	Foreground  string
	Dim         string
	Border      string
	BorderFocus string
	Title       string

	StatusOK    string
	StatusWarn  string
	StatusError string

	GaugeFilled string
	GaugeEmpty  string
}

// PrimaryHex returns the Primary HSL triplet converted to hex for
// terminal rendering. Falls back to the Title color when Primary does
// not parse.
func (t Theme) PrimaryHex() string {
	if hex, ok := HSLToHex(t.Primary); ok {
		return hex
	}
	return t.Title
}

// AccentHex returns the Accent HSL triplet converted to hex.
func (t Theme) AccentHex() string {
	if hex, ok := HSLToHex(t.Accent); ok {
		return hex
	}
	return t.Title
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
	Current = greenTheme()
}

// Get returns a named theme, falling back to Green if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry[DefaultName]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a theme to the registry under its lowercase name,
// replacing any existing theme of the same name. Custom themes loaded
// from TOML go through here.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
