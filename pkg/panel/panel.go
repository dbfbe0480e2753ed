// Package panel implements the exclusivity rules for homedeck's
// expandable trays (tool trays, tasks, bookmarks): at most one panel
// is open at a time, requesting an open panel closes it, and the
// reserved "none" category dismisses everything. Requests travel over
// the Change Notifier as expandPanel events so panels stay decoupled
// from whoever raised the request (dock button, keybinding, or a
// click outside every panel).
package panel

import "fmt"

// Category identifies one expandable panel. The set is closed: it
// drives both which tray toggles and, for the tool trays, which
// preference key stores the tray's links.
type Category int

const (
	// None is reserved: requesting it collapses every panel.
	None Category = iota
	AI
	Social
	Google
	Microsoft
	Tasks
	Bookmarks
)

var categoryNames = [...]string{
	None:      "none",
	AI:        "ai",
	Social:    "social",
	Google:    "google",
	Microsoft: "microsoft",
	Tasks:     "tasks",
	Bookmarks: "bookmarks",
}

// String returns the wire name used in expandPanel event payloads.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a wire name back to its Category. Unknown names
// map to None so a malformed request degrades to dismiss-all.
func ParseCategory(name string) Category {
	for c, n := range categoryNames {
		if n == name {
			return Category(c)
		}
	}
	return None
}

// ToolCategories are the categories whose panels are customizable
// link trays with their own storage keys.
func ToolCategories() []Category {
	return []Category{AI, Social, Google, Microsoft}
}

// State tracks one panel's expansion and applies the exclusivity
// rules to an incoming expandPanel request. Every expandable panel
// widget embeds one so the tie-break behavior lives in exactly one
// place.
type State struct {
	category Category
	expanded bool
}

// NewState returns a collapsed State for the given panel category.
func NewState(category Category) State {
	return State{category: category}
}

// Category returns the panel category this state belongs to.
func (s *State) Category() Category {
	return s.category
}

// Expanded reports whether the panel is currently open.
func (s *State) Expanded() bool {
	return s.expanded
}

// Apply processes an expandPanel request and reports whether the
// panel's visibility changed. Rules:
//   - own category: toggle (an open panel closes, a closed one opens)
//   - None: close
//   - any other category: close (exclusivity)
func (s *State) Apply(requested Category) (changed bool) {
	was := s.expanded
	switch requested {
	case s.category:
		s.expanded = !s.expanded
	default:
		s.expanded = false
	}
	return s.expanded != was
}

// Collapse force-closes the panel regardless of the request rules.
func (s *State) Collapse() {
	s.expanded = false
}
