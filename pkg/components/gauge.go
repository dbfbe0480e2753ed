package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// Eighth-block runes give the gauge sub-cell resolution.
var gaugeBlocks = [9]rune{
	' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█',
}

// Gauge renders a horizontal progress bar.
type Gauge struct {
	Label       string
	ShowPercent bool
}

// Render draws the bar for value out of max across width cells. The
// label and percent readout are included in the width budget.
func (g Gauge) Render(value, max float64, width int) string {
	if width <= 0 {
		return ""
	}

	ratio := 0.0
	if max > 0 {
		ratio = value / max
	}
	ratio = math.Min(1, math.Max(0, ratio))

	prefix := ""
	if g.Label != "" {
		prefix = g.Label + " "
	}
	suffix := ""
	if g.ShowPercent {
		suffix = fmt.Sprintf(" %3d%%", int(math.Round(ratio*100)))
	}

	barWidth := width - VisibleWidth(prefix) - VisibleWidth(suffix)
	if barWidth <= 0 {
		return Truncate(prefix+suffix, width)
	}

	t := theme.Current
	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(t.GaugeFilled))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(t.GaugeEmpty))

	units := int(math.Round(ratio * float64(barWidth) * 8))
	fullCells := units / 8
	partial := units % 8
	emptyCells := barWidth - fullCells
	if partial > 0 {
		emptyCells--
	}
	if emptyCells < 0 {
		emptyCells = 0
	}

	var b strings.Builder
	b.WriteString(prefix)
	if fullCells > 0 {
		b.WriteString(filled.Render(strings.Repeat(string(gaugeBlocks[8]), fullCells)))
	}
	if partial > 0 {
		b.WriteString(filled.Render(string(gaugeBlocks[partial])))
	}
	if emptyCells > 0 {
		b.WriteString(empty.Render(strings.Repeat("░", emptyCells)))
	}
	b.WriteString(suffix)
	return b.String()
}

// RenderStack draws one bar per entry with labels aligned.
func RenderStack(entries []GaugeEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}
	labelW := 0
	for _, e := range entries {
		if w := VisibleWidth(e.Label); w > labelW {
			labelW = w
		}
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		g := Gauge{Label: PadRight(e.Label, labelW), ShowPercent: true}
		lines[i] = g.Render(e.Value, e.Max, width)
	}
	return strings.Join(lines, "\n")
}

// GaugeEntry is one row in a stacked gauge render.
type GaugeEntry struct {
	Label      string
	Value, Max float64
}
