package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
	"gitlab.com/tinyland/lab/homedeck/pkg/search"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// Bookmark is one saved link.
type Bookmark struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// BookmarksWidget lists saved links and expands into a panel for
// editing. Enter on a bookmark opens it in the browser. Adding takes
// two inputs, name then URL; submitting either blank abandons the
// add.
type BookmarksWidget struct {
	store     prefs.Store
	bus       *notify.Bus
	launcher  search.Launcher
	bookmarks []Bookmark
	cursor    int
	state     panel.State
	input     textinput.Model
	// adding tracks the two-step add: "" idle, "name", "url".
	adding      string
	pendingName string
	dispose     func()
}

var _ app.Widget = (*BookmarksWidget)(nil)

// NewBookmarksWidget loads stored bookmarks and joins the panel
// protocol. launcher may be nil.
func NewBookmarksWidget(store prefs.Store, bus *notify.Bus, launcher search.Launcher) *BookmarksWidget {
	ti := textinput.New()
	ti.CharLimit = 200

	w := &BookmarksWidget{
		store:     store,
		launcher:  launcher,
		bookmarks: prefs.GetOr(store, prefs.KeyBookmarks, []Bookmark(nil)),
		bus:       bus,
		state:     panel.NewState(panel.Bookmarks),
		input:     ti,
	}
	w.dispose = notify.On(bus, panel.EventExpand, func(req panel.ExpandRequest) {
		w.state.Apply(req.Category)
		if !w.state.Expanded() {
			w.adding = ""
			w.input.Blur()
		}
	})
	return w
}

func (w *BookmarksWidget) ID() string          { return "bookmarks" }
func (w *BookmarksWidget) Title() string       { return "Bookmarks" }
func (w *BookmarksWidget) MinSize() (int, int) { return 30, 12 }

// CapturingInput reports whether an add step is open.
func (w *BookmarksWidget) CapturingInput() bool { return w.adding != "" }

func (w *BookmarksWidget) Close() {
	if w.dispose != nil {
		w.dispose()
	}
}

func (w *BookmarksWidget) Overlay() (string, bool) {
	if !w.state.Expanded() {
		return "", false
	}
	return w.render(40, 10), true
}

func (w *BookmarksWidget) Update(tea.Msg) tea.Cmd { return nil }

func (w *BookmarksWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if w.adding != "" {
		return w.handleInputKey(key)
	}

	switch key.String() {
	case "a", "n":
		w.adding = "name"
		w.input.Placeholder = "Bookmark name"
		w.input.SetValue("")
		w.input.Focus()
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(w.bookmarks)-1 {
			w.cursor++
		}
	case "enter":
		w.open(w.cursor)
	case "d", "x":
		w.remove(w.cursor)
	case "esc":
		if w.state.Expanded() {
			notify.Emit(w.bus, panel.EventExpand, panel.ExpandRequest{Category: panel.None})
		}
	}
	return nil
}

func (w *BookmarksWidget) handleInputKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter:
		w.submitStep(w.input.Value())
		return nil
	case tea.KeyEsc:
		w.adding = ""
		w.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(key)
	return cmd
}

// submitStep advances the two-step add flow. A blank submit at either
// step abandons the add without saving anything.
func (w *BookmarksWidget) submitStep(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		w.adding = ""
		w.input.Blur()
		return
	}

	switch w.adding {
	case "name":
		w.pendingName = value
		w.adding = "url"
		w.input.Placeholder = "URL"
		w.input.SetValue("")
	case "url":
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			value = "https://" + value
		}
		w.bookmarks = append(w.bookmarks, Bookmark{
			ID:   uuid.NewString(),
			Name: w.pendingName,
			URL:  value,
		})
		w.persist()
		w.adding = ""
		w.input.Blur()
	}
}

func (w *BookmarksWidget) open(i int) {
	if i < 0 || i >= len(w.bookmarks) || w.launcher == nil {
		return
	}
	_ = w.launcher.Open(w.bookmarks[i].URL)
}

func (w *BookmarksWidget) remove(i int) {
	if i < 0 || i >= len(w.bookmarks) {
		return
	}
	w.bookmarks = append(w.bookmarks[:i], w.bookmarks[i+1:]...)
	if w.cursor >= len(w.bookmarks) && w.cursor > 0 {
		w.cursor--
	}
	w.persist()
}

func (w *BookmarksWidget) persist() {
	_ = prefs.Set(w.store, prefs.KeyBookmarks, w.bookmarks)
}

func (w *BookmarksWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return components.FitBlock(w.render(width, height), width, height)
}

func (w *BookmarksWidget) render(width, height int) string {
	if len(w.bookmarks) == 0 && w.adding == "" {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))
		return dim.Render("No bookmarks. Press a to add one.")
	}

	items := make([]components.ListItem, len(w.bookmarks))
	for i, bm := range w.bookmarks {
		items[i] = components.ListItem{Text: bm.Name + "  " + bm.URL}
	}

	rows := height
	if w.adding != "" {
		rows--
	}
	out := components.RenderList(items, w.cursor, width, rows)
	if w.adding != "" {
		w.input.Width = width - 4
		out += "\n" + w.input.View()
	}
	return out
}
