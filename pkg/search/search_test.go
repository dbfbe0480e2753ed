package search

import (
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
)

func TestQueryURLEscapes(t *testing.T) {
	e := Engine{Template: "https://www.google.com/search?q=%s"}
	got := e.QueryURL("go generics & errors")
	if !strings.Contains(got, "go+generics+%26+errors") {
		t.Errorf("QueryURL = %q", got)
	}
}

func TestNewRosterSeedsDefaults(t *testing.T) {
	store := prefs.NewMemStore()
	r := NewRoster(store)

	engines := r.Engines()
	if len(engines) != 3 {
		t.Fatalf("got %d engines, want 3", len(engines))
	}
	if engines[0].Name != "Google" {
		t.Errorf("first engine = %q, want Google", engines[0].Name)
	}

	// Seeding is persisted, not just in memory.
	if _, ok := prefs.Get[[]Engine](store, prefs.KeySearchEngines); !ok {
		t.Error("defaults not written to store")
	}
}

func TestNewRosterKeepsStored(t *testing.T) {
	store := prefs.NewMemStore()
	custom := []Engine{{Name: "Kagi", Shortcut: "k", Template: "https://kagi.com/search?q=%s"}}
	if err := prefs.Set(store, prefs.KeySearchEngines, custom); err != nil {
		t.Fatal(err)
	}

	r := NewRoster(store)
	engines := r.Engines()
	if len(engines) != 1 || engines[0].Name != "Kagi" {
		t.Errorf("stored roster replaced: %+v", engines)
	}
}

func TestAddValidation(t *testing.T) {
	r := NewRoster(prefs.NewMemStore())

	if err := r.Add(Engine{Template: "https://x.com/%s"}); err == nil {
		t.Error("unnamed engine should be rejected")
	}
	if err := r.Add(Engine{Name: "Bad", Template: "https://x.com/search"}); err == nil {
		t.Error("template without placeholder should be rejected")
	}
	if err := r.Add(Engine{Name: "Dup", Shortcut: "g", Template: "https://x.com/%s"}); err == nil {
		t.Error("duplicate shortcut should be rejected")
	}
	if err := r.Add(Engine{Name: "Kagi", Shortcut: "k", Template: "https://kagi.com/search?q=%s"}); err != nil {
		t.Errorf("valid engine rejected: %v", err)
	}
	if len(r.Engines()) != 4 {
		t.Errorf("roster size = %d, want 4", len(r.Engines()))
	}
}

func TestRemove(t *testing.T) {
	r := NewRoster(prefs.NewMemStore())
	if err := r.Remove("Bing"); err != nil {
		t.Fatal(err)
	}
	for _, e := range r.Engines() {
		if e.Name == "Bing" {
			t.Error("Bing still present after Remove")
		}
	}
	if err := r.Remove("Bing"); err == nil {
		t.Error("removing absent engine should error")
	}
}

func TestResolveShortcut(t *testing.T) {
	r := NewRoster(prefs.NewMemStore())

	e, q := r.Resolve("d private search")
	if e.Name != "DuckDuckGo" || q != "private search" {
		t.Errorf("Resolve = %q, %q", e.Name, q)
	}

	// No shortcut match: default engine takes the whole input.
	e, q = r.Resolve("dinner recipes")
	if e.Name != "Google" || q != "dinner recipes" {
		t.Errorf("Resolve = %q, %q", e.Name, q)
	}

	// Bare shortcut-looking word with no query text.
	e, q = r.Resolve("g")
	if e.Name != "Google" || q != "g" {
		t.Errorf("Resolve single token = %q, %q", e.Name, q)
	}
}
