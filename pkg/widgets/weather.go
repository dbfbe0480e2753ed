package widgets

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
	"gitlab.com/tinyland/lab/homedeck/pkg/weather"
)

// conditionIcons maps OpenWeatherMap condition groups to glyphs.
var conditionIcons = map[string]string{
	"Clear":        "☀",
	"Clouds":       "☁",
	"Rain":         "☔",
	"Drizzle":      "☔",
	"Thunderstorm": "⚡",
	"Snow":         "❄",
	"Mist":         "≈",
	"Fog":          "≈",
}

// checkEvery is how often the widget re-evaluates the refresh policy;
// the service itself enforces the hourly fetch floor.
const checkEvery = 15 * time.Minute

// WeatherWidget shows the current conditions from the weather
// service. Fetches run off the update loop through DataFetchCmd on a
// 15-minute cadence. Synthetic readings carry an inline notice so
// placeholder data is never mistaken for a live reading.
type WeatherWidget struct {
	service   *weather.Service
	current   weather.Conditions
	lastCheck time.Time
	dispose   func()
}

var _ app.Widget = (*WeatherWidget)(nil)

// NewWeatherWidget reads the cached conditions and subscribes to
// location changes.
func NewWeatherWidget(service *weather.Service, bus *notify.Bus) *WeatherWidget {
	w := &WeatherWidget{
		service: service,
		current: service.Current(),
	}
	w.dispose = notify.On(bus, app.EventWeatherLocationChanged, func(ev app.WeatherLocationChanged) {
		service.SetLocation(ev.Location, ev.UseCustomLocation)
		if ev.APIKey != "" {
			service.SetClient(weather.NewClient(ev.APIKey))
		}
		// Force the next tick to fetch.
		w.lastCheck = time.Time{}
	})
	return w
}

func (w *WeatherWidget) ID() string          { return "weather" }
func (w *WeatherWidget) Title() string       { return "Weather" }
func (w *WeatherWidget) MinSize() (int, int) { return 24, 6 }

func (w *WeatherWidget) Close() {
	if w.dispose != nil {
		w.dispose()
	}
}

func (w *WeatherWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		if msg.Time.Sub(w.lastCheck) < checkEvery {
			return nil
		}
		w.lastCheck = msg.Time
		return app.DataFetchCmd("weather", func() (any, error) {
			ctx, cancel := contextWithTimeout()
			defer cancel()
			w.service.Refresh(ctx)
			return w.service.Current(), nil
		})
	case app.DataUpdateEvent:
		if msg.Source != "weather" || msg.Err != nil {
			return nil
		}
		if c, ok := msg.Data.(weather.Conditions); ok {
			w.current = c
		}
	}
	return nil
}

// HandleKey forces a refresh on r.
func (w *WeatherWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if key.String() == "r" {
		w.lastCheck = time.Time{}
	}
	return nil
}

func (w *WeatherWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c := w.current

	t := theme.Current
	primary := lipgloss.NewStyle().Foreground(lipgloss.Color(t.PrimaryHex())).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim))
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color(t.StatusWarn))

	icon := conditionIcons[c.Condition]
	if icon != "" {
		icon += " "
	}

	lines := []string{
		primary.Render(fmt.Sprintf("%s%.0f°C", icon, c.TempC)),
		c.Description,
		dim.Render(fmt.Sprintf("%s  ↓%.0f° ↑%.0f°", c.Location, c.MinC, c.MaxC)),
		dim.Render(fmt.Sprintf("humidity %d%%  wind %.0f km/h", c.Humidity, c.WindKph)),
	}
	if c.Synthetic {
		lines = append(lines, warn.Render("sample data, set an API key"))
	}

	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += components.Truncate(l, width)
	}
	return components.FitBlock(out, width, height)
}
