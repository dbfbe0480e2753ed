package widgets

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
	"gitlab.com/tinyland/lab/homedeck/pkg/search"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
	"gitlab.com/tinyland/lab/homedeck/pkg/tools"
)

// trayPositions maps each tray to the screen edge it anchors to,
// carried in the tool-panel-expanded notice.
var trayPositions = map[panel.Category]string{
	panel.AI:        "left",
	panel.Google:    "left",
	panel.Social:    "right",
	panel.Microsoft: "right",
}

// ToolsTrayWidget is one category's quick-link tray. It is an overlay
// only: collapsed it renders nothing in the grid, expanded it lists
// its catalog with number shortcuts for launching.
type ToolsTrayWidget struct {
	catalog  *tools.Catalog
	launcher search.Launcher
	bus      *notify.Bus
	state    panel.State
	cursor   int
	dispose  func()
}

var _ app.Widget = (*ToolsTrayWidget)(nil)

// NewToolsTrayWidget builds the tray for catalog's category.
func NewToolsTrayWidget(catalog *tools.Catalog, bus *notify.Bus, launcher search.Launcher) *ToolsTrayWidget {
	w := &ToolsTrayWidget{
		catalog:  catalog,
		launcher: launcher,
		bus:      bus,
		state:    panel.NewState(catalog.Category()),
	}
	w.dispose = notify.On(bus, panel.EventExpand, func(req panel.ExpandRequest) {
		opened := w.state.Apply(req.Category) && w.state.Expanded()
		if opened {
			w.cursor = 0
			notify.Emit(bus, panel.EventExpanded, panel.ExpandedNotice{
				Category: w.state.Category(),
				Position: trayPositions[w.state.Category()],
			})
		}
	})
	return w
}

func (w *ToolsTrayWidget) ID() string {
	return w.state.Category().String() + "-tray"
}

func (w *ToolsTrayWidget) Title() string {
	switch w.state.Category() {
	case panel.AI:
		return "AI Tools"
	case panel.Social:
		return "Social"
	case panel.Google:
		return "Google Apps"
	case panel.Microsoft:
		return "Microsoft Apps"
	}
	return "Tools"
}

func (w *ToolsTrayWidget) MinSize() (int, int) { return 34, 12 }

func (w *ToolsTrayWidget) Close() {
	if w.dispose != nil {
		w.dispose()
	}
}

// Expanded reports the tray's own visibility.
func (w *ToolsTrayWidget) Expanded() bool { return w.state.Expanded() }

func (w *ToolsTrayWidget) Overlay() (string, bool) {
	if !w.state.Expanded() {
		return "", false
	}
	return w.render(32, 10), true
}

func (w *ToolsTrayWidget) Update(tea.Msg) tea.Cmd { return nil }

func (w *ToolsTrayWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if !w.state.Expanded() {
		return nil
	}

	entries := w.catalog.Tools()
	switch s := key.String(); s {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(entries)-1 {
			w.cursor++
		}
	case "enter":
		w.launch(entries, w.cursor)
	case "esc":
		notify.Emit(w.bus, panel.EventExpand, panel.ExpandRequest{Category: panel.None})
	case "d":
		if w.cursor < len(entries) {
			_ = w.catalog.Remove(entries[w.cursor].ID)
			if w.cursor > 0 {
				w.cursor--
			}
		}
	default:
		// Digit shortcuts launch directly.
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			w.launch(entries, int(s[0]-'1'))
		}
	}
	return nil
}

func (w *ToolsTrayWidget) launch(entries []tools.Tool, i int) {
	if i < 0 || i >= len(entries) || w.launcher == nil {
		return
	}
	_ = w.launcher.Open(entries[i].URL)
}

func (w *ToolsTrayWidget) View(width, height int) string {
	// Grid rendering happens only through Overlay.
	return ""
}

func (w *ToolsTrayWidget) render(width, height int) string {
	entries := w.catalog.Tools()
	if len(entries) == 0 {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))
		return dim.Render("Tray is empty.")
	}

	items := make([]components.ListItem, len(entries))
	for i, e := range entries {
		label := fmt.Sprintf("%d %s", i+1, e.Name)
		if e.Icon != "" {
			label = e.Icon + " " + label
		}
		items[i] = components.ListItem{Text: label}
	}

	var b strings.Builder
	b.WriteString(components.RenderList(items, w.cursor, width, height-1))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))
	b.WriteString("\n" + dim.Render("enter/1-9 open  d remove"))
	return b.String()
}
