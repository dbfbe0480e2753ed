package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHSL parses an HSL triplet of the form "142 86% 28%" into hue
// degrees, saturation, and lightness fractions. Returns ok=false for
// anything that does not match the three-field shape.
func ParseHSL(s string) (h, sat, light float64, ok bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 3 {
		return 0, 0, 0, false
	}

	h, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, 0, false
	}
	sat, err = parsePercent(fields[1])
	if err != nil {
		return 0, 0, 0, false
	}
	light, err = parsePercent(fields[2])
	if err != nil {
		return 0, 0, 0, false
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h, sat, light, true
}

// HSLToHex converts an HSL triplet string to a "#rrggbb" hex color.
func HSLToHex(s string) (string, bool) {
	h, sat, light, ok := ParseHSL(s)
	if !ok {
		return "", false
	}
	r, g, b := hslToRGB(h, sat, light)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
}

func parsePercent(s string) (float64, error) {
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("percent out of range: %v", v)
	}
	return v / 100, nil
}

// hslToRGB converts hue (degrees), saturation and lightness (0-1
// fractions) to 8-bit RGB channels.
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	r = uint8(math.Round((rf + m) * 255))
	g = uint8(math.Round((gf + m) * 255))
	b = uint8(math.Round((bf + m) * 255))
	return r, g, b
}
