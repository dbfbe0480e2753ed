package panel

import (
	"io"
	"log/slog"
	"testing"

	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
)

func newTestBus() *notify.Bus {
	return notify.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// wire connects a State to the bus the way panel widgets do.
func wire(bus *notify.Bus, cat Category) *State {
	s := NewState(cat)
	notify.On(bus, EventExpand, func(req ExpandRequest) {
		s.Apply(req.Category)
	})
	return &s
}

func TestToggleSemantics(t *testing.T) {
	bus := newTestBus()
	c := NewCoordinator(bus)
	ai := wire(bus, AI)

	// Initially closed: first request opens, second closes.
	c.Request(AI)
	if !ai.Expanded() {
		t.Fatal("first request did not open the panel")
	}
	c.Request(AI)
	if ai.Expanded() {
		t.Error("second identical request re-opened instead of closing")
	}
}

func TestExclusivity(t *testing.T) {
	bus := newTestBus()
	c := NewCoordinator(bus)
	ai := wire(bus, AI)
	social := wire(bus, Social)

	c.Request(AI)
	c.Request(Social)

	if ai.Expanded() {
		t.Error("ai panel stayed open after social was requested")
	}
	if !social.Expanded() {
		t.Error("social panel did not open")
	}
	if c.Open() != Social {
		t.Errorf("coordinator mirror = %v, want Social", c.Open())
	}
}

func TestNoneClosesAll(t *testing.T) {
	bus := newTestBus()
	c := NewCoordinator(bus)
	tasks := wire(bus, Tasks)
	bookmarks := wire(bus, Bookmarks)

	// Force both open before wiring exclusivity into the picture; the
	// normal rules keep at most one open, but dismiss-all must cope
	// with any starting state.
	tasks.Apply(Tasks)
	bookmarks.Apply(Bookmarks)
	if !tasks.Expanded() || !bookmarks.Expanded() {
		t.Fatal("test setup: both panels should start open")
	}

	c.DismissAll()

	if tasks.Expanded() || bookmarks.Expanded() {
		t.Errorf("after DismissAll: tasks=%v bookmarks=%v, want both closed",
			tasks.Expanded(), bookmarks.Expanded())
	}
	if c.Open() != None {
		t.Errorf("coordinator mirror = %v, want None", c.Open())
	}
}

func TestCategoryWireNames(t *testing.T) {
	cases := []struct {
		cat  Category
		name string
	}{
		{None, "none"},
		{AI, "ai"},
		{Social, "social"},
		{Google, "google"},
		{Microsoft, "microsoft"},
		{Tasks, "tasks"},
		{Bookmarks, "bookmarks"},
	}
	for _, tc := range cases {
		if got := tc.cat.String(); got != tc.name {
			t.Errorf("%v.String() = %q, want %q", tc.cat, got, tc.name)
		}
		if got := ParseCategory(tc.name); got != tc.cat {
			t.Errorf("ParseCategory(%q) = %v, want %v", tc.name, got, tc.cat)
		}
	}

	// Unknown names degrade to dismiss-all.
	if got := ParseCategory("garbage"); got != None {
		t.Errorf("ParseCategory(garbage) = %v, want None", got)
	}
}

func TestApplyReportsChange(t *testing.T) {
	s := NewState(AI)

	if changed := s.Apply(AI); !changed {
		t.Error("opening did not report a change")
	}
	if changed := s.Apply(Social); !changed {
		t.Error("exclusivity close did not report a change")
	}
	if changed := s.Apply(Social); changed {
		t.Error("closing an already-closed panel reported a change")
	}
}
