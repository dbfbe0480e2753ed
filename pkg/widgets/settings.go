package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// settings field indexes, in display order.
const (
	fieldUsername = iota
	fieldDigitalClock
	field24Hour
	fieldCompact
	fieldTheme
	fieldWeatherLocation
	fieldUseCustomLocation
	fieldAPIKey
	fieldAdvanced
	fieldCount
)

// SettingsWidget is the preferences editor overlay. Every change is
// written to the store first and then published on the bus, so other
// widgets update immediately and a fresh mount reads the same state.
type SettingsWidget struct {
	store prefs.Store
	bus   *notify.Bus

	open    bool
	cursor  int
	editing bool
	input   textinput.Model
}

var _ app.Widget = (*SettingsWidget)(nil)

// NewSettingsWidget builds the editor. It holds no cached preference
// values; every render reads through the store.
func NewSettingsWidget(store prefs.Store, bus *notify.Bus) *SettingsWidget {
	ti := textinput.New()
	ti.CharLimit = 120
	return &SettingsWidget{store: store, bus: bus, input: ti}
}

func (w *SettingsWidget) ID() string          { return "settings" }
func (w *SettingsWidget) Title() string       { return "Settings" }
func (w *SettingsWidget) MinSize() (int, int) { return 46, 14 }

// Toggle opens or closes the overlay.
func (w *SettingsWidget) Toggle() { w.open = !w.open }

// Open reports whether the overlay is visible.
func (w *SettingsWidget) Open() bool { return w.open }

func (w *SettingsWidget) Overlay() (string, bool) {
	if !w.open {
		return "", false
	}
	return w.render(44, 12), true
}

func (w *SettingsWidget) Update(tea.Msg) tea.Cmd { return nil }

func (w *SettingsWidget) View(width, height int) string {
	// Settings renders only as an overlay.
	return ""
}

func (w *SettingsWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if !w.open {
		if key.String() == "s" {
			w.open = true
		}
		return nil
	}
	if w.editing {
		return w.handleEditKey(key)
	}

	switch key.String() {
	case "esc", "s":
		w.open = false
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < fieldCount-1 {
			w.cursor++
		}
	case "enter", " ":
		w.activate()
	}
	return nil
}

// activate edits or toggles the selected field.
func (w *SettingsWidget) activate() {
	switch w.cursor {
	case fieldUsername:
		w.startEdit("Your name", prefs.GetOr(w.store, prefs.KeyUsername, ""))
	case fieldWeatherLocation:
		w.startEdit("City", prefs.GetOr(w.store, prefs.KeyWeatherLocation, ""))
	case fieldAPIKey:
		w.startEdit("OpenWeatherMap API key", prefs.GetOr(w.store, prefs.KeyWeatherAPIKey, ""))
	case fieldDigitalClock:
		v := !prefs.GetOr(w.store, prefs.KeyDigitalClock, true)
		if prefs.Set(w.store, prefs.KeyDigitalClock, v) == nil {
			notify.Emit(w.bus, app.EventClockTypeChanged, app.ClockTypeChanged{IsDigital: v})
		}
	case field24Hour:
		v := !prefs.GetOr(w.store, prefs.Key24HourClock, false)
		if prefs.Set(w.store, prefs.Key24HourClock, v) == nil {
			notify.Emit(w.bus, app.EventClockFormatChanged, app.ClockFormatChanged{Is24Hour: v})
		}
	case fieldCompact:
		v := !prefs.GetOr(w.store, prefs.KeyCompact, false)
		_ = prefs.Set(w.store, prefs.KeyCompact, v)
	case fieldTheme:
		w.cycleTheme()
	case fieldUseCustomLocation:
		v := !prefs.GetOr(w.store, prefs.KeyUseCustomLocation, false)
		if prefs.Set(w.store, prefs.KeyUseCustomLocation, v) == nil {
			w.publishWeatherLocation()
		}
	case fieldAdvanced:
		v := !prefs.GetOr(w.store, prefs.KeyAdvancedFeatures, false)
		if prefs.Set(w.store, prefs.KeyAdvancedFeatures, v) == nil {
			notify.Emit(w.bus, app.EventAdvancedFeaturesChanged, app.AdvancedFeaturesChanged{Enabled: v})
		}
	}
}

func (w *SettingsWidget) startEdit(placeholder, current string) {
	w.editing = true
	w.input.Placeholder = placeholder
	w.input.SetValue(current)
	w.input.Focus()
}

func (w *SettingsWidget) handleEditKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter:
		w.commitEdit(strings.TrimSpace(w.input.Value()))
		w.editing = false
		w.input.Blur()
		return nil
	case tea.KeyEsc:
		w.editing = false
		w.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(key)
	return cmd
}

// commitEdit stores the edited value and publishes its change event.
func (w *SettingsWidget) commitEdit(value string) {
	switch w.cursor {
	case fieldUsername:
		if prefs.Set(w.store, prefs.KeyUsername, value) == nil {
			notify.Emit(w.bus, app.EventUserNameChanged, app.UserNameChanged{UserName: value})
		}
	case fieldWeatherLocation:
		if prefs.Set(w.store, prefs.KeyWeatherLocation, value) == nil {
			w.publishWeatherLocation()
		}
	case fieldAPIKey:
		if prefs.Set(w.store, prefs.KeyWeatherAPIKey, value) == nil {
			w.publishWeatherLocation()
		}
	}
}

// publishWeatherLocation emits the combined location event carrying
// all three weather settings, the shape subscribers expect.
func (w *SettingsWidget) publishWeatherLocation() {
	notify.Emit(w.bus, app.EventWeatherLocationChanged, app.WeatherLocationChanged{
		Location:          prefs.GetOr(w.store, prefs.KeyWeatherLocation, ""),
		UseCustomLocation: prefs.GetOr(w.store, prefs.KeyUseCustomLocation, false),
		APIKey:            prefs.GetOr(w.store, prefs.KeyWeatherAPIKey, ""),
	})
}

// cycleTheme advances to the next registered theme and announces it.
func (w *SettingsWidget) cycleTheme() {
	names := theme.Names()
	if len(names) == 0 {
		return
	}
	current := prefs.GetOr(w.store, prefs.KeyTheme, theme.DefaultName)
	next := names[0]
	for i, n := range names {
		if n == current {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if prefs.Set(w.store, prefs.KeyTheme, next) != nil {
		return
	}
	theme.SetCurrent(next)
	notify.Emit(w.bus, app.EventThemeChanged, app.ThemeChanged{Theme: theme.Current})
}

func (w *SettingsWidget) render(width, height int) string {
	onOff := func(key string, def bool) string {
		if prefs.GetOr(w.store, key, def) {
			return "on"
		}
		return "off"
	}

	rows := []string{
		"Name: " + prefs.GetOr(w.store, prefs.KeyUsername, "(unset)"),
		"Digital clock: " + onOff(prefs.KeyDigitalClock, true),
		"24-hour time: " + onOff(prefs.Key24HourClock, false),
		"Compact layout: " + onOff(prefs.KeyCompact, false),
		"Theme: " + prefs.GetOr(w.store, prefs.KeyTheme, theme.DefaultName),
		"Weather city: " + prefs.GetOr(w.store, prefs.KeyWeatherLocation, "(auto)"),
		"Custom location: " + onOff(prefs.KeyUseCustomLocation, false),
		"Weather API key: " + maskKey(prefs.GetOr(w.store, prefs.KeyWeatherAPIKey, "")),
		"Advanced features: " + onOff(prefs.KeyAdvancedFeatures, false),
	}

	t := theme.Current
	selected := lipgloss.NewStyle().Foreground(lipgloss.Color(t.PrimaryHex())).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))

	var b strings.Builder
	for i, row := range rows {
		line := "  " + row
		if i == w.cursor {
			if w.editing {
				w.input.Width = width - 6
				line = "> " + w.input.View()
			} else {
				line = selected.Render("> " + row)
			}
		}
		b.WriteString(components.Truncate(line, width) + "\n")
	}
	b.WriteString(dim.Render("enter edit/toggle  esc close"))
	return b.String()
}

func maskKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
