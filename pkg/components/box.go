// Package components holds the shared rendering primitives the
// widgets are drawn with: titled boxes, progress gauges, and text
// fitting helpers. Everything renders through lipgloss so colors
// degrade with the terminal profile.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// Box renders widget content inside a rounded border with a title.
type Box struct {
	Title   string
	Focused bool
	Padding int
}

// Render draws content into an outer area of width x height cells.
// Content is clipped to the interior; short content is padded so the
// box always occupies the full area.
func (b Box) Render(content string, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}

	t := theme.Current
	borderColor := lipgloss.Color(t.Border)
	titleColor := lipgloss.Color(t.Title)
	if b.Focused {
		borderColor = lipgloss.Color(t.BorderFocus)
		titleColor = lipgloss.Color(t.BorderFocus)
	}

	innerW := width - 2 - 2*b.Padding
	innerH := height - 2
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	body := FitBlock(content, innerW, innerH)

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, b.Padding)

	box := style.Render(body)
	if b.Title == "" {
		return box
	}
	return b.embedTitle(box, width, titleColor, borderColor)
}

// embedTitle splices the title into the top border line.
func (b Box) embedTitle(box string, width int, titleColor, borderColor lipgloss.Color) string {
	lines := strings.SplitN(box, "\n", 2)
	if len(lines) < 2 {
		return box
	}

	title := b.Title
	maxTitle := width - 6
	if maxTitle < 1 {
		return box
	}
	title = Truncate(title, maxTitle)

	label := lipgloss.NewStyle().Foreground(titleColor).Bold(b.Focused).Render(" " + title + " ")
	edge := lipgloss.NewStyle().Foreground(borderColor)

	fill := width - 3 - VisibleWidth(label)
	if fill < 0 {
		return box
	}
	top := edge.Render("╭─") +
		label +
		edge.Render(strings.Repeat("─", fill)+"╮")
	return top + "\n" + lines[1]
}
