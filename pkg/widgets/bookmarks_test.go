package widgets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
)

type fakeLauncher struct {
	opened []string
	err    error
}

func (f *fakeLauncher) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func typeText(w *BookmarksWidget, text string) {
	for _, r := range text {
		w.HandleKey(keyRunes(string(r)))
	}
}

func TestBookmarksTwoStepAdd(t *testing.T) {
	store := prefs.NewMemStore()
	w := NewBookmarksWidget(store, notify.NewBus(nil), nil)

	w.HandleKey(keyRunes("a"))
	typeText(w, "Go docs")
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(w, "go.dev/doc")
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	stored, _ := prefs.Get[[]Bookmark](store, prefs.KeyBookmarks)
	if len(stored) != 1 {
		t.Fatalf("stored bookmarks = %+v", stored)
	}
	if stored[0].Name != "Go docs" || stored[0].URL != "https://go.dev/doc" {
		t.Errorf("bookmark = %+v", stored[0])
	}
}

func TestBookmarksBlankSubmitAbandons(t *testing.T) {
	store := prefs.NewMemStore()
	w := NewBookmarksWidget(store, notify.NewBus(nil), nil)

	// Blank name.
	w.HandleKey(keyRunes("a"))
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if len(w.bookmarks) != 0 || w.adding != "" {
		t.Error("blank name should abandon the add")
	}

	// Name entered, blank URL.
	w.HandleKey(keyRunes("a"))
	typeText(w, "Site")
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if len(w.bookmarks) != 0 {
		t.Error("blank URL should abandon the add")
	}
}

func TestBookmarksOpenUsesLauncher(t *testing.T) {
	store := prefs.NewMemStore()
	prefs.Set(store, prefs.KeyBookmarks, []Bookmark{
		{ID: "1", Name: "HN", URL: "https://news.ycombinator.com"},
	})
	launcher := &fakeLauncher{}
	w := NewBookmarksWidget(store, notify.NewBus(nil), launcher)

	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if len(launcher.opened) != 1 || launcher.opened[0] != "https://news.ycombinator.com" {
		t.Errorf("opened = %v", launcher.opened)
	}
}

func TestBookmarksRemove(t *testing.T) {
	store := prefs.NewMemStore()
	prefs.Set(store, prefs.KeyBookmarks, []Bookmark{
		{ID: "1", Name: "A", URL: "https://a.com"},
		{ID: "2", Name: "B", URL: "https://b.com"},
	})
	w := NewBookmarksWidget(store, notify.NewBus(nil), nil)

	w.HandleKey(keyRunes("d"))
	if len(w.bookmarks) != 1 || w.bookmarks[0].Name != "B" {
		t.Errorf("after remove: %+v", w.bookmarks)
	}

	stored, _ := prefs.Get[[]Bookmark](store, prefs.KeyBookmarks)
	if len(stored) != 1 {
		t.Errorf("removal not persisted: %+v", stored)
	}
}

func TestBookmarksEscCollapsesPanel(t *testing.T) {
	bus := notify.NewBus(nil)
	coord := panel.NewCoordinator(bus)
	w := NewBookmarksWidget(prefs.NewMemStore(), bus, nil)

	coord.Request(panel.Bookmarks)
	if !w.state.Expanded() {
		t.Fatal("panel did not open")
	}

	w.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})

	if w.state.Expanded() {
		t.Error("esc should collapse the panel")
	}
	if coord.Open() != panel.None {
		t.Errorf("coordinator still reports %v open", coord.Open())
	}
}
