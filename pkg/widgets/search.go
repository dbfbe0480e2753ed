package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/search"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// SearchWidget is the query bar. Enter resolves the input against the
// engine roster (a leading shortcut token picks the engine) and opens
// the query URL in the system browser.
type SearchWidget struct {
	roster   *search.Roster
	launcher search.Launcher
	input    textinput.Model
	status   string
}

var _ app.Widget = (*SearchWidget)(nil)

// NewSearchWidget builds the bar over the given roster. launcher may
// be nil, which keeps queries local (tests).
func NewSearchWidget(roster *search.Roster, launcher search.Launcher) *SearchWidget {
	ti := textinput.New()
	ti.Placeholder = "Search the web (g/b/d + space picks the engine)"
	ti.Prompt = "⌕ "
	ti.CharLimit = 200
	ti.Focus()

	return &SearchWidget{
		roster:   roster,
		launcher: launcher,
		input:    ti,
	}
}

func (w *SearchWidget) ID() string          { return "search" }
func (w *SearchWidget) Title() string       { return "Search" }
func (w *SearchWidget) MinSize() (int, int) { return 30, 3 }

// CapturingInput is always true: the bar is a live text input
// whenever it has focus.
func (w *SearchWidget) CapturingInput() bool { return true }

func (w *SearchWidget) Update(tea.Msg) tea.Cmd { return nil }

func (w *SearchWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter:
		return w.submit()
	case tea.KeyEsc:
		w.input.SetValue("")
		w.status = ""
		return nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(key)
	return cmd
}

// submit launches the query. Empty input is ignored rather than
// treated as an error.
func (w *SearchWidget) submit() tea.Cmd {
	query := strings.TrimSpace(w.input.Value())
	if query == "" {
		return nil
	}

	engine, q := w.roster.Resolve(query)
	url := engine.QueryURL(q)
	w.input.SetValue("")

	if w.launcher == nil {
		w.status = fmt.Sprintf("%s: %s", engine.Name, q)
		return nil
	}
	if err := w.launcher.Open(url); err != nil {
		w.status = "could not open browser"
		return nil
	}
	w.status = fmt.Sprintf("searched %s", engine.Name)
	return nil
}

func (w *SearchWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	w.input.Width = width - 4

	line := w.input.View()
	if w.status != "" {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))
		line += "\n" + dim.Render(w.status)
	}
	return components.FitBlock(line, width, height)
}
