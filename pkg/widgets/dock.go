package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// dockButton is one clickable dock entry.
type dockButton struct {
	label    string
	category panel.Category // None for the settings button
	zoneID   string
}

// DockWidget is the button row at the bottom of the dashboard. Every
// button raises its panel request through the Coordinator; clicks are
// resolved with bubblezone hit testing. The settings button invokes
// the callback wired in main instead of a panel category.
type DockWidget struct {
	coordinator *panel.Coordinator
	onSettings  func()
	buttons     []dockButton
	cursor      int
}

var (
	_ app.Widget     = (*DockWidget)(nil)
	_ app.MouseAware = (*DockWidget)(nil)
)

// NewDockWidget builds the dock. onSettings may be nil.
func NewDockWidget(coordinator *panel.Coordinator, onSettings func()) *DockWidget {
	buttons := []dockButton{
		{label: "AI", category: panel.AI},
		{label: "Social", category: panel.Social},
		{label: "Google", category: panel.Google},
		{label: "Microsoft", category: panel.Microsoft},
		{label: "Tasks", category: panel.Tasks},
		{label: "Bookmarks", category: panel.Bookmarks},
		{label: "Settings", category: panel.None},
	}
	for i := range buttons {
		buttons[i].zoneID = "dock-" + strings.ToLower(buttons[i].label)
	}
	return &DockWidget{coordinator: coordinator, onSettings: onSettings, buttons: buttons}
}

func (w *DockWidget) ID() string          { return "dock" }
func (w *DockWidget) Title() string       { return "Dock" }
func (w *DockWidget) MinSize() (int, int) { return 60, 3 }

func (w *DockWidget) Update(tea.Msg) tea.Cmd { return nil }

func (w *DockWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "left", "h":
		if w.cursor > 0 {
			w.cursor--
		}
	case "right", "l":
		if w.cursor < len(w.buttons)-1 {
			w.cursor++
		}
	case "enter", " ":
		w.press(w.buttons[w.cursor])
	}
	return nil
}

// HandleMouse claims presses landing on a dock button. Unclaimed
// presses bubble up to the shell, which treats them as click-outside
// and dismisses every panel.
func (w *DockWidget) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false, nil
	}
	for i, b := range w.buttons {
		if zone.Get(b.zoneID).InBounds(msg) {
			w.cursor = i
			w.press(b)
			return true, nil
		}
	}
	return false, nil
}

func (w *DockWidget) press(b dockButton) {
	if b.category == panel.None {
		if w.onSettings != nil {
			w.onSettings()
		}
		return
	}
	w.coordinator.Request(b.category)
}

func (w *DockWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	t := theme.Current
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)).Padding(0, 1)
	focus := lipgloss.NewStyle().Foreground(lipgloss.Color(t.PrimaryHex())).Bold(true).Padding(0, 1)
	active := lipgloss.NewStyle().Foreground(lipgloss.Color(t.AccentHex())).Bold(true).Underline(true).Padding(0, 1)

	open := w.coordinator.Open()
	parts := make([]string, len(w.buttons))
	for i, b := range w.buttons {
		style := idle
		switch {
		case b.category != panel.None && b.category == open:
			style = active
		case i == w.cursor:
			style = focus
		}
		parts[i] = zone.Mark(b.zoneID, style.Render(b.label))
	}

	row := strings.Join(parts, " ")
	return components.FitBlock(components.Center(row, width), width, height)
}
