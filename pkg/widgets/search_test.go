package widgets

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
	"gitlab.com/tinyland/lab/homedeck/pkg/search"
)

func typeQuery(t *testing.T, w *SearchWidget, s string) {
	t.Helper()
	w.HandleKey(keyRunes(s))
}

func TestSearchSubmitOpensDefaultEngine(t *testing.T) {
	launcher := &fakeLauncher{}
	w := NewSearchWidget(search.NewRoster(prefs.NewMemStore()), launcher)

	typeQuery(t, w, "dinner recipes")
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if len(launcher.opened) != 1 {
		t.Fatalf("opened = %v, want one URL", launcher.opened)
	}
	got := launcher.opened[0]
	if !strings.Contains(got, "google.com") || !strings.Contains(got, "dinner+recipes") {
		t.Errorf("opened %q, want a Google query for dinner recipes", got)
	}
}

func TestSearchShortcutPicksEngine(t *testing.T) {
	launcher := &fakeLauncher{}
	w := NewSearchWidget(search.NewRoster(prefs.NewMemStore()), launcher)

	typeQuery(t, w, "d go testing")
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if len(launcher.opened) != 1 {
		t.Fatalf("opened = %v, want one URL", launcher.opened)
	}
	if !strings.Contains(launcher.opened[0], "duckduckgo.com") {
		t.Errorf("opened %q, want DuckDuckGo", launcher.opened[0])
	}
}

func TestSearchEmptySubmitIgnored(t *testing.T) {
	launcher := &fakeLauncher{}
	w := NewSearchWidget(search.NewRoster(prefs.NewMemStore()), launcher)

	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	typeQuery(t, w, "   ")
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if len(launcher.opened) != 0 {
		t.Errorf("opened = %v, want none", launcher.opened)
	}
}

func TestSearchEscClearsInput(t *testing.T) {
	w := NewSearchWidget(search.NewRoster(prefs.NewMemStore()), nil)

	typeQuery(t, w, "half-typed")
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})

	if got := w.input.Value(); got != "" {
		t.Errorf("input after esc = %q, want empty", got)
	}
}

func TestSearchNilLauncherShowsStatus(t *testing.T) {
	w := NewSearchWidget(search.NewRoster(prefs.NewMemStore()), nil)

	typeQuery(t, w, "g cats")
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(w.status, "Google") || !strings.Contains(w.status, "cats") {
		t.Errorf("status = %q, want engine and query", w.status)
	}
}
