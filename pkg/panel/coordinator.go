package panel

import (
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
)

// Event names for panel coordination. These are the panel layer's own
// channels on the Change Notifier; preference-change events live in
// pkg/app.
const (
	// EventExpand requests a panel toggle. Detail: ExpandRequest.
	EventExpand = "expandPanel"

	// EventExpanded announces that a tool tray finished opening so
	// observers (the dock highlight, layout) can react.
	// Detail: ExpandedNotice.
	EventExpanded = "tool-panel-expanded"
)

// ExpandRequest is the detail payload of an EventExpand publish.
type ExpandRequest struct {
	Category Category
}

// ExpandedNotice is the detail payload of an EventExpanded publish.
type ExpandedNotice struct {
	Category Category
	Position string // "left" or "right" edge the tray anchors to
}

// Coordinator raises expandPanel requests on behalf of dock buttons
// and keybindings, and mirrors which panel ended up open. The mirror
// is advisory; each panel's State is the authority for its own
// visibility.
type Coordinator struct {
	bus  *notify.Bus
	open Category
}

// NewCoordinator returns a Coordinator publishing on bus. It keeps its
// open-panel mirror current by subscribing to its own event channel,
// so requests raised directly on the bus are tracked too.
func NewCoordinator(bus *notify.Bus) *Coordinator {
	c := &Coordinator{bus: bus, open: None}
	notify.On(bus, EventExpand, func(req ExpandRequest) {
		switch {
		case req.Category == None:
			c.open = None
		case req.Category == c.open:
			c.open = None // toggle closed
		default:
			c.open = req.Category
		}
	})
	return c
}

// Request publishes an expandPanel event for cat. Publishing the same
// category twice in a row opens then closes the panel (toggle), never
// re-opens.
func (c *Coordinator) Request(cat Category) {
	notify.Emit(c.bus, EventExpand, ExpandRequest{Category: cat})
}

// DismissAll collapses every panel, used by click-outside handling.
func (c *Coordinator) DismissAll() {
	c.Request(None)
}

// Open returns the category the coordinator believes is open, or None.
func (c *Coordinator) Open() Category {
	return c.open
}
