package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/homedeck/pkg/theme"
)

// ListItem is one selectable row.
type ListItem struct {
	Text string
	// Done draws a checked marker instead of a bullet.
	Done bool
	// Checkbox switches the marker from a bullet to [ ] / [x].
	Checkbox bool
}

// RenderList draws items with the cursor row highlighted. Rows are
// truncated to width; at most height rows are drawn, scrolled so the
// cursor stays visible.
func RenderList(items []ListItem, cursor, width, height int) string {
	if width <= 0 || height <= 0 || len(items) == 0 {
		return ""
	}

	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := start + height
	if end > len(items) {
		end = len(items)
	}

	t := theme.Current
	selected := lipgloss.NewStyle().Foreground(lipgloss.Color(t.PrimaryHex())).Bold(true)
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)).Strikethrough(true)

	var lines []string
	for i := start; i < end; i++ {
		it := items[i]

		marker := "•" // bullet
		if it.Checkbox {
			marker = "[ ]"
			if it.Done {
				marker = "[x]"
			}
		}

		prefix := "  "
		if i == cursor {
			prefix = "> "
		}

		row := Truncate(prefix+marker+" "+it.Text, width)
		switch {
		case i == cursor:
			row = selected.Render(row)
		case it.Done:
			row = done.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}
