package layout

// Row describes one dashboard row: its height constraint and the
// width constraint of each slot in it.
type Row struct {
	Height Constraint
	Slots  []Constraint
}

// Grid splits area into rows of slots. The returned slice is indexed
// [row][slot]. Rows are stacked vertically with the given spacing,
// slots are laid out left-to-right.
func Grid(area Rect, spacing int, rows []Row) [][]Rect {
	heights := make([]Constraint, len(rows))
	for i, r := range rows {
		heights[i] = r.Height
	}
	bands := Split(area, Vertical, spacing, heights...)

	out := make([][]Rect, len(rows))
	for i, r := range rows {
		out[i] = Split(bands[i], Horizontal, spacing, r.Slots...)
	}
	return out
}

// Centered returns a rect of at most width x height centered inside
// area. Used for overlay panels.
func Centered(area Rect, width, height int) Rect {
	if width > area.Width {
		width = area.Width
	}
	if height > area.Height {
		height = area.Height
	}
	return Rect{
		X:      area.X + (area.Width-width)/2,
		Y:      area.Y + (area.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
