package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
)

// Widget is the interface every dashboard widget implements. Widgets
// own their display state exclusively; cross-widget consistency comes
// from the Preference Store read on construction plus Change Notifier
// subscriptions, never from sharing state by reference.
type Widget interface {
	// ID returns a unique identifier (e.g. "clock", "weather").
	ID() string

	// Title returns the human-readable display name.
	Title() string

	// MinSize returns the minimum width and height in cells.
	MinSize() (int, int)

	// Update handles a message. Widgets filter for the messages they
	// care about and ignore the rest.
	Update(msg tea.Msg) tea.Cmd

	// View renders the widget content into the given area.
	View(width, height int) string

	// HandleKey processes a key event while this widget has focus.
	HandleKey(key tea.KeyMsg) tea.Cmd
}

// Closer is implemented by widgets that hold Change Notifier
// subscriptions; the model disposes them on shutdown so no handler
// outlives its widget.
type Closer interface {
	Close()
}

// MouseAware is implemented by widgets that claim mouse clicks (the
// dock's buttons). If no widget claims a press, the model treats it
// as a click outside every panel and dismisses them all.
type MouseAware interface {
	HandleMouse(msg tea.MouseMsg) (handled bool, cmd tea.Cmd)
}

// Overlay is implemented by widgets that render above the grid when
// expanded (panels, settings) instead of occupying a grid slot.
type Overlay interface {
	Overlay() (content string, visible bool)
}

// InputCapturer is implemented by widgets with free-form text entry.
// While the focused widget reports true, shell rune shortcuts (quit,
// expand) and esc stand aside so typed text can contain them.
type InputCapturer interface {
	CapturingInput() bool
}

// Config controls the root model.
type Config struct {
	// TickInterval drives the render ticker. Default: 500ms, fast
	// enough for the clock separator blink.
	TickInterval time.Duration

	// Coordinator raises panel requests for click-outside dismissal.
	// May be nil in tests that do not exercise panels.
	Coordinator *panel.Coordinator

	// Compact tightens the layout (the "compact" preference).
	Compact bool

	// Preset names the dashboard arrangement to render.
	Preset string
}

// DefaultConfig returns the default model configuration.
func DefaultConfig() Config {
	return Config{
		TickInterval: 500 * time.Millisecond,
	}
}

// AppModel is the Bubbletea root model: it owns the widget registry,
// focus, and layout flags, and fans messages out to widgets.
type AppModel struct {
	cfg Config

	widgets     map[string]Widget
	widgetOrder []string

	focusedWidget  string
	expandedWidget string

	width, height int
	layoutDirty   bool

	quitting bool
}

// NewAppModel creates the root model with the given widgets mounted in
// order. The first widget receives initial focus.
func NewAppModel(cfg Config, widgets ...Widget) AppModel {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 500 * time.Millisecond
	}

	m := AppModel{
		cfg:         cfg,
		widgets:     make(map[string]Widget, len(widgets)),
		layoutDirty: true,
	}
	for _, w := range widgets {
		if _, dup := m.widgets[w.ID()]; dup {
			continue
		}
		m.widgets[w.ID()] = w
		m.widgetOrder = append(m.widgetOrder, w.ID())
	}
	if len(m.widgetOrder) > 0 {
		m.focusedWidget = m.widgetOrder[0]
	}
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return TickCmd(m.cfg.TickInterval)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutDirty = true
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
		// An open overlay (panel, tray, settings) takes key priority
		// over the focused grid widget.
		target, ok := m.overlayTarget()
		if !ok {
			target, ok = m.widgets[m.focusedWidget]
		}
		if ok {
			if cmd := target.HandleKey(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case TickEvent:
		for _, id := range m.widgetOrder {
			if cmd := m.widgets[id].Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		cmds = append(cmds, TickCmd(m.cfg.TickInterval))
		return m, tea.Batch(cmds...)

	case WidgetFocusEvent:
		m.FocusWidget(msg.WidgetID)
		return m, nil

	default:
		// DataUpdateEvent and anything else fans out to every widget.
		for _, id := range m.widgetOrder {
			if cmd := m.widgets[id].Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}
}

// handleGlobalKey processes keys owned by the shell itself.
func (m *AppModel) handleGlobalKey(key tea.KeyMsg) (tea.Cmd, bool) {
	switch key.String() {
	case "ctrl+c":
		m.quitting = true
		m.closeWidgets()
		return tea.Quit, true
	case "q":
		if m.inputCaptured() {
			return nil, false
		}
		m.quitting = true
		m.closeWidgets()
		return tea.Quit, true
	case "f":
		if m.inputCaptured() {
			return nil, false
		}
		m.ToggleExpand()
		return nil, true
	case "tab":
		m.CycleFocusForward()
		return nil, true
	case "shift+tab":
		m.CycleFocusBackward()
		return nil, true
	case "esc":
		// Collapsing a full-screen widget wins over everything.
		if m.expandedWidget != "" {
			m.ToggleExpand()
			return nil, true
		}
		if m.inputCaptured() {
			return nil, false
		}
		if m.cfg.Coordinator != nil {
			m.cfg.Coordinator.DismissAll()
		}
		return nil, true
	}
	return nil, false
}

// overlayTarget returns the widget whose overlay is currently
// visible, if any.
func (m *AppModel) overlayTarget() (Widget, bool) {
	for _, id := range m.widgetOrder {
		ov, ok := m.widgets[id].(Overlay)
		if !ok {
			continue
		}
		if _, visible := ov.Overlay(); visible {
			return m.widgets[id], true
		}
	}
	return nil, false
}

// inputCaptured reports whether rune and esc shortcuts must pass
// through to the key route: an overlay is open, or the focused widget
// is consuming text.
func (m *AppModel) inputCaptured() bool {
	if _, ok := m.overlayTarget(); ok {
		return true
	}
	if ic, ok := m.widgets[m.focusedWidget].(InputCapturer); ok {
		return ic.CapturingInput()
	}
	return false
}

// handleMouse offers the press to MouseAware widgets; unclaimed
// presses dismiss every open panel (click outside).
func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	var cmds []tea.Cmd
	claimed := false
	for _, id := range m.widgetOrder {
		ma, ok := m.widgets[id].(MouseAware)
		if !ok {
			continue
		}
		handled, cmd := ma.HandleMouse(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			claimed = true
		}
	}
	if !claimed && msg.Action == tea.MouseActionPress && m.cfg.Coordinator != nil {
		m.cfg.Coordinator.DismissAll()
	}
	return tea.Batch(cmds...)
}

// closeWidgets disposes every widget's bus subscriptions.
func (m *AppModel) closeWidgets() {
	for _, id := range m.widgetOrder {
		if c, ok := m.widgets[id].(Closer); ok {
			c.Close()
		}
	}
}

// Width returns the current terminal width.
func (m AppModel) Width() int { return m.width }

// Height returns the current terminal height.
func (m AppModel) Height() int { return m.height }

// LayoutDirty reports whether the layout must be recomputed.
func (m AppModel) LayoutDirty() bool { return m.layoutDirty }

// FocusedWidgetID returns the ID of the focused widget.
func (m AppModel) FocusedWidgetID() string { return m.focusedWidget }

// ExpandedWidgetID returns the ID of the expanded widget, or "".
func (m AppModel) ExpandedWidgetID() string { return m.expandedWidget }

// Widget returns the mounted widget with the given ID.
func (m AppModel) Widget(id string) (Widget, bool) {
	w, ok := m.widgets[id]
	return w, ok
}

// WidgetIDs returns the mount order.
func (m AppModel) WidgetIDs() []string {
	ids := make([]string, len(m.widgetOrder))
	copy(ids, m.widgetOrder)
	return ids
}
