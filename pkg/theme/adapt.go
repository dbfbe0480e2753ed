package theme

import (
	"strconv"

	"github.com/muesli/termenv"
)

// Adapt converts every hex color in a theme to the closest color the
// detected terminal profile supports. True-color terminals get the
// theme unchanged; 256-color and ANSI terminals get numeric palette
// indices, which lipgloss accepts directly.
func Adapt(t Theme, profile termenv.Profile) Theme {
	if profile == termenv.TrueColor {
		return t
	}

	conv := func(hex string) string {
		return downgrade(hex, profile)
	}

	t.Foreground = conv(t.Foreground)
	t.Dim = conv(t.Dim)
	t.Border = conv(t.Border)
	t.BorderFocus = conv(t.BorderFocus)
	t.Title = conv(t.Title)

	t.StatusOK = conv(t.StatusOK)
	t.StatusWarn = conv(t.StatusWarn)
	t.StatusError = conv(t.StatusError)

	t.GaugeFilled = conv(t.GaugeFilled)
	t.GaugeEmpty = conv(t.GaugeEmpty)

	return t
}

// downgrade maps a "#rrggbb" color onto profile's palette. Returns the
// input unchanged when it is not a hex color or the profile keeps
// true color.
func downgrade(hex string, profile termenv.Profile) string {
	if len(hex) == 0 || hex[0] != '#' {
		return hex
	}
	switch c := profile.Convert(termenv.RGBColor(hex)).(type) {
	case termenv.ANSI256Color:
		return strconv.Itoa(int(c))
	case termenv.ANSIColor:
		return strconv.Itoa(int(c))
	default:
		return hex
	}
}
