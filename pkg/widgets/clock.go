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

// ClockWidget shows the current time, digital or word-style, in 12 or
// 24 hour format. Format changes arrive over the bus from Settings;
// toggling locally writes the preference and publishes the same
// events so every mounted reader stays in step.
type ClockWidget struct {
	store   prefs.Store
	bus     *notify.Bus
	digital bool
	is24h   bool
	now     func() time.Time
	dispose []func()
}

var _ app.Widget = (*ClockWidget)(nil)

// NewClockWidget reads the persisted clock preferences and subscribes
// to their change events.
func NewClockWidget(store prefs.Store, bus *notify.Bus) *ClockWidget {
	w := &ClockWidget{
		store:   store,
		bus:     bus,
		digital: prefs.GetOr(store, prefs.KeyDigitalClock, true),
		is24h:   prefs.GetOr(store, prefs.Key24HourClock, false),
		now:     time.Now,
	}
	w.dispose = append(w.dispose,
		notify.On(bus, app.EventClockTypeChanged, func(ev app.ClockTypeChanged) {
			w.digital = ev.IsDigital
		}),
		notify.On(bus, app.EventClockFormatChanged, func(ev app.ClockFormatChanged) {
			w.is24h = ev.Is24Hour
		}),
	)
	return w
}

func (w *ClockWidget) ID() string          { return "clock" }
func (w *ClockWidget) Title() string       { return "Clock" }
func (w *ClockWidget) MinSize() (int, int) { return 20, 5 }

func (w *ClockWidget) Close() {
	for _, d := range w.dispose {
		d()
	}
}

func (w *ClockWidget) Update(msg tea.Msg) tea.Cmd {
	// Ticks redraw through View; nothing to store.
	return nil
}

// HandleKey toggles the display mode locally: t flips digital/word,
// h flips 12/24 hour.
func (w *ClockWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "t":
		w.setDigital(!w.digital)
	case "h":
		w.set24Hour(!w.is24h)
	}
	return nil
}

func (w *ClockWidget) setDigital(digital bool) {
	if err := prefs.Set(w.store, prefs.KeyDigitalClock, digital); err == nil {
		notify.Emit(w.bus, app.EventClockTypeChanged, app.ClockTypeChanged{IsDigital: digital})
	}
}

func (w *ClockWidget) set24Hour(is24 bool) {
	if err := prefs.Set(w.store, prefs.Key24HourClock, is24); err == nil {
		notify.Emit(w.bus, app.EventClockFormatChanged, app.ClockFormatChanged{Is24Hour: is24})
	}
}

func (w *ClockWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	now := w.now()

	var face string
	if w.digital {
		face = w.digitalFace(now)
	} else {
		face = wordClock(now)
	}

	t := theme.Current
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.PrimaryHex())).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))

	lines := components.Center(timeStyle.Render(face), width) + "\n" +
		components.Center(dateStyle.Render(now.Format("Monday, January 2")), width)
	return components.FitBlock(lines, width, height)
}

// digitalFace renders HH:MM with the separator blinking on odd
// seconds.
func (w *ClockWidget) digitalFace(now time.Time) string {
	sep := ":"
	if now.Second()%2 == 1 {
		sep = " "
	}

	hour := now.Hour()
	suffix := ""
	if !w.is24h {
		suffix = " AM"
		if hour >= 12 {
			suffix = " PM"
		}
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}
	return fmt.Sprintf("%02d%s%02d%s", hour, sep, now.Minute(), suffix)
}

// wordClock spells the time out, quarter-hour resolution.
func wordClock(now time.Time) string {
	hours := []string{
		"twelve", "one", "two", "three", "four", "five",
		"six", "seven", "eight", "nine", "ten", "eleven",
	}

	h := now.Hour() % 12
	m := now.Minute()

	switch {
	case m < 8:
		return fmt.Sprintf("%s o'clock", hours[h])
	case m < 23:
		return fmt.Sprintf("quarter past %s", hours[h])
	case m < 38:
		return fmt.Sprintf("half past %s", hours[h])
	case m < 53:
		return fmt.Sprintf("quarter to %s", hours[(h+1)%12])
	default:
		return fmt.Sprintf("%s o'clock", hours[(h+1)%12])
	}
}
