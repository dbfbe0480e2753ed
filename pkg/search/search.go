// Package search manages the search engine roster and builds query
// URLs. Engines are persisted so user additions survive restarts;
// the built-in roster seeds the store on first run.
package search

import (
	"fmt"
	"net/url"
	"strings"

	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
)

// Engine is one configured search provider. Template contains a %s
// placeholder replaced with the escaped query.
type Engine struct {
	Name     string `json:"name"`
	Shortcut string `json:"shortcut"`
	Template string `json:"template"`
}

// QueryURL builds the full search URL for q.
func (e Engine) QueryURL(q string) string {
	return fmt.Sprintf(e.Template, url.QueryEscape(q))
}

// Defaults returns the built-in engine roster.
func Defaults() []Engine {
	return []Engine{
		{Name: "Google", Shortcut: "g", Template: "https://www.google.com/search?q=%s"},
		{Name: "Bing", Shortcut: "b", Template: "https://www.bing.com/search?q=%s"},
		{Name: "DuckDuckGo", Shortcut: "d", Template: "https://duckduckgo.com/?q=%s"},
	}
}

// Roster wraps the persisted engine list.
type Roster struct {
	store prefs.Store
}

// NewRoster loads the roster, seeding the defaults when the store
// has no engines yet.
func NewRoster(store prefs.Store) *Roster {
	r := &Roster{store: store}
	if _, ok := prefs.Get[[]Engine](store, prefs.KeySearchEngines); !ok {
		_ = prefs.Set(store, prefs.KeySearchEngines, Defaults())
	}
	return r
}

// Engines returns the current roster in stored order.
func (r *Roster) Engines() []Engine {
	return prefs.GetOr(r.store, prefs.KeySearchEngines, Defaults())
}

// Add appends an engine. The shortcut must be unique and the
// template must contain exactly one %s placeholder.
func (r *Roster) Add(e Engine) error {
	if e.Name == "" {
		return fmt.Errorf("engine has no name")
	}
	if strings.Count(e.Template, "%s") != 1 {
		return fmt.Errorf("engine template %q needs one %%s placeholder", e.Template)
	}
	engines := r.Engines()
	for _, existing := range engines {
		if existing.Shortcut == e.Shortcut && e.Shortcut != "" {
			return fmt.Errorf("shortcut %q already taken by %s", e.Shortcut, existing.Name)
		}
	}
	return prefs.Set(r.store, prefs.KeySearchEngines, append(engines, e))
}

// Remove deletes the engine with the given name.
func (r *Roster) Remove(name string) error {
	engines := r.Engines()
	kept := engines[:0]
	for _, e := range engines {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(engines) {
		return fmt.Errorf("no engine named %q", name)
	}
	return prefs.Set(r.store, prefs.KeySearchEngines, kept)
}

// Resolve parses input of the form "g cats" where a leading token
// matching an engine shortcut selects that engine. Without a
// shortcut match, the first engine handles the whole input.
func (r *Roster) Resolve(input string) (Engine, string) {
	engines := r.Engines()
	if len(engines) == 0 {
		engines = Defaults()
	}

	head, rest, found := strings.Cut(strings.TrimSpace(input), " ")
	if found {
		for _, e := range engines {
			if e.Shortcut != "" && strings.EqualFold(head, e.Shortcut) {
				return e, strings.TrimSpace(rest)
			}
		}
	}
	return engines[0], strings.TrimSpace(input)
}
