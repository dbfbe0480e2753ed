package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleWidth returns the rendered cell width of s, ignoring ANSI
// escape sequences.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most width cells, appending an ellipsis when
// anything was removed. ANSI sequences are preserved.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// Cut trims s to at most width cells with no ellipsis.
func Cut(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// PadRight pads s with spaces to exactly width cells, truncating if
// it is already longer.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// Center centers s within width cells.
func Center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// FitBlock clips or pads a multi-line string to exactly width x
// height cells so boxed content always fills its frame.
func FitBlock(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	if s != "" {
		lines = strings.Split(s, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, height)
	for i := 0; i < height; i++ {
		if i < len(lines) {
			out[i] = PadRight(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}

// Wrap soft-wraps s to the given width, breaking on spaces where
// possible.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		for ansi.StringWidth(line) > width {
			cut := ansi.Truncate(line, width, "")
			if idx := strings.LastIndex(cut, " "); idx > 0 {
				out = append(out, line[:idx])
				line = strings.TrimLeft(line[idx+1:], " ")
			} else {
				out = append(out, cut)
				line = strings.TrimPrefix(line, cut)
			}
		}
		out = append(out, line)
	}
	return out
}
