package widgets

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/panel"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestDockEnterRequestsPanel(t *testing.T) {
	bus := notify.NewBus(nil)
	coord := panel.NewCoordinator(bus)
	w := NewDockWidget(coord, nil)

	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if coord.Open() != panel.AI {
		t.Errorf("open = %v, want AI", coord.Open())
	}

	// Move to Social and press.
	w.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if coord.Open() != panel.Social {
		t.Errorf("open = %v, want Social", coord.Open())
	}
}

func TestDockSettingsButtonCallsBack(t *testing.T) {
	bus := notify.NewBus(nil)
	called := false
	w := NewDockWidget(panel.NewCoordinator(bus), func() { called = true })

	for i := 0; i < len(w.buttons)-1; i++ {
		w.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	}
	w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if !called {
		t.Error("settings button did not invoke callback")
	}
}

func TestDockViewListsButtons(t *testing.T) {
	bus := notify.NewBus(nil)
	w := NewDockWidget(panel.NewCoordinator(bus), nil)

	view := w.View(80, 3)
	for _, label := range []string{"AI", "Social", "Google", "Microsoft", "Tasks", "Bookmarks", "Settings"} {
		if !strings.Contains(view, label) {
			t.Errorf("dock view missing %q", label)
		}
	}
}

func TestDockIgnoresNonPressMouse(t *testing.T) {
	bus := notify.NewBus(nil)
	w := NewDockWidget(panel.NewCoordinator(bus), nil)

	handled, _ := w.HandleMouse(tea.MouseMsg{Action: tea.MouseActionMotion})
	if handled {
		t.Error("motion events should not be claimed")
	}
}
