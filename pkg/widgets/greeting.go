package widgets

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// GreetingWidget shows a time-of-day salutation with the configured
// user name. The name is edited in Settings; this widget only reads
// it, at mount and again on every userNameChanged publish.
type GreetingWidget struct {
	name    string
	now     func() time.Time
	dispose func()
}

var _ app.Widget = (*GreetingWidget)(nil)

// NewGreetingWidget reads the stored name and subscribes for changes.
func NewGreetingWidget(store prefs.Store, bus *notify.Bus) *GreetingWidget {
	w := &GreetingWidget{
		name: prefs.GetOr(store, prefs.KeyUsername, ""),
		now:  time.Now,
	}
	w.dispose = notify.On(bus, app.EventUserNameChanged, func(ev app.UserNameChanged) {
		w.name = ev.UserName
	})
	return w
}

func (w *GreetingWidget) ID() string          { return "greeting" }
func (w *GreetingWidget) Title() string       { return "Welcome" }
func (w *GreetingWidget) MinSize() (int, int) { return 24, 4 }

func (w *GreetingWidget) Close() {
	if w.dispose != nil {
		w.dispose()
	}
}

func (w *GreetingWidget) Update(tea.Msg) tea.Cmd       { return nil }
func (w *GreetingWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

func (w *GreetingWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	greeting := salutation(w.now().Hour())
	if w.name != "" {
		greeting = fmt.Sprintf("%s, %s", greeting, w.name)
	}

	t := theme.Current
	main := lipgloss.NewStyle().Foreground(lipgloss.Color(t.PrimaryHex())).Bold(true).Render(greeting)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)).Render("Make today count")

	return components.FitBlock(
		components.Center(main, width)+"\n"+components.Center(sub, width),
		width, height)
}

func salutation(hour int) string {
	switch {
	case hour < 5:
		return "Good night"
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
