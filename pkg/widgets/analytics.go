package widgets

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/app"
	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/notify"
	"gitlab.com/tinyland/lab/homedeck/pkg/prefs"
	"gitlab.com/tinyland/lab/homedeck/pkg/sitestats"
	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// AnalyticsWidget summarizes website usage: minutes per category and
// the heaviest sites, with over-limit and synthetic markers. It only
// renders while advanced features are enabled.
type AnalyticsWidget struct {
	tracker *sitestats.Tracker
	enabled bool
	dispose func()
}

var _ app.Widget = (*AnalyticsWidget)(nil)

// NewAnalyticsWidget reads the gate preference and subscribes to its
// change event.
func NewAnalyticsWidget(tracker *sitestats.Tracker, store prefs.Store, bus *notify.Bus) *AnalyticsWidget {
	w := &AnalyticsWidget{
		tracker: tracker,
		enabled: prefs.GetOr(store, prefs.KeyAdvancedFeatures, false),
	}
	w.dispose = notify.On(bus, app.EventAdvancedFeaturesChanged, func(ev app.AdvancedFeaturesChanged) {
		w.enabled = ev.Enabled
	})
	return w
}

func (w *AnalyticsWidget) ID() string          { return "analytics" }
func (w *AnalyticsWidget) Title() string       { return "Website Time" }
func (w *AnalyticsWidget) MinSize() (int, int) { return 40, 8 }

func (w *AnalyticsWidget) Close() {
	if w.dispose != nil {
		w.dispose()
	}
}

func (w *AnalyticsWidget) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey: R resets all tracked data.
func (w *AnalyticsWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if key.String() == "R" && w.enabled {
		_ = w.tracker.Reset()
	}
	return nil
}

func (w *AnalyticsWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.Dim))

	if !w.enabled {
		return components.FitBlock(dim.Render("Enable advanced features in settings."), width, height)
	}

	records := w.tracker.Records()
	if len(records) == 0 {
		return components.FitBlock(dim.Render("No usage data yet."), width, height)
	}

	totals := w.tracker.Totals()
	sum := totals[sitestats.Productive] + totals[sitestats.Neutral] + totals[sitestats.Distracting]

	gauges := components.RenderStack([]components.GaugeEntry{
		{Label: "productive", Value: float64(totals[sitestats.Productive]), Max: float64(sum)},
		{Label: "neutral", Value: float64(totals[sitestats.Neutral]), Max: float64(sum)},
		{Label: "distracting", Value: float64(totals[sitestats.Distracting]), Max: float64(sum)},
	}, width)

	var b strings.Builder
	b.WriteString(gauges)

	warn := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current.StatusWarn))
	for _, r := range w.tracker.TopByTime(height - 4) {
		line := fmt.Sprintf("%s  %dm · %d visits", r.URL, r.TimeSpent, r.Visits)
		switch {
		case r.OverLimit():
			line = warn.Render(line + "  over limit")
		case r.Synthetic:
			line = dim.Render(line + "  (sample)")
		}
		b.WriteString("\n" + components.Truncate(line, width))
	}

	return components.FitBlock(b.String(), width, height)
}
