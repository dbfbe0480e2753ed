package app

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/homedeck/pkg/components"
	"gitlab.com/tinyland/lab/homedeck/pkg/layout"
	"gitlab.com/tinyland/lab/homedeck/pkg/preset"
)

// View implements tea.Model. Widgets render into the slots their
// preset row assigns; Overlay widgets paint above the grid when
// visible.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width < 20 || m.height < 10 {
		return "terminal too small"
	}

	area := layout.Rect{Width: m.width, Height: m.height}
	spacing := 1
	if m.cfg.Compact {
		spacing = 0
	}

	p := preset.Get(m.cfg.Preset)
	rects := preset.Resolve(p, area, spacing)

	if m.expandedWidget != "" {
		if w, ok := m.widgets[m.expandedWidget]; ok {
			return zone.Scan(components.Box{
				Title:   w.Title(),
				Focused: true,
			}.Render(w.View(m.width-2, m.height-2), m.width, m.height))
		}
	}

	canvas := newCanvas(m.width, m.height)
	for _, id := range m.widgetOrder {
		r, ok := rects[id]
		if !ok || r.Empty() {
			continue
		}
		w := m.widgets[id]
		box := components.Box{
			Title:   w.Title(),
			Focused: id == m.focusedWidget,
		}
		canvas.paint(r, box.Render(w.View(r.Width-2, r.Height-2), r.Width, r.Height))
	}

	// Overlays (panels, settings) draw last, centered.
	for _, id := range m.widgetOrder {
		ov, ok := m.widgets[id].(Overlay)
		if !ok {
			continue
		}
		content, visible := ov.Overlay()
		if !visible {
			continue
		}
		w := m.widgets[id]
		minW, minH := w.MinSize()
		r := layout.Centered(area, minW, minH)
		canvas.paint(r, components.Box{Title: w.Title(), Focused: true}.Render(content, r.Width, r.Height))
	}

	return zone.Scan(canvas.String())
}

// canvas is a cell grid the view composes widget renders onto.
type canvas struct {
	width, height int
	lines         []string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, lines: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// paint overlays block at rect r, clipping to the canvas.
func (c *canvas) paint(r layout.Rect, block string) {
	if block == "" {
		return
	}
	rows := strings.Split(block, "\n")
	for i, row := range rows {
		y := r.Y + i
		if y < 0 || y >= c.height {
			continue
		}
		c.lines[y] = spliceLine(c.lines[y], row, r.X, c.width)
	}
}

// spliceLine overwrites line starting at column x with row, keeping
// the rest of the line intact. Works on visible cells so styled rows
// keep their escapes.
func spliceLine(line, row string, x, width int) string {
	if x >= width {
		return line
	}
	rowW := components.VisibleWidth(row)
	if x+rowW > width {
		row = components.Cut(row, width-x)
		rowW = components.VisibleWidth(row)
	}

	left := components.Cut(line, x)
	leftW := components.VisibleWidth(left)
	if leftW < x {
		left += strings.Repeat(" ", x-leftW)
	}

	rightStart := x + rowW
	right := ""
	if lineW := components.VisibleWidth(line); rightStart < lineW {
		right = cutLeft(line, rightStart)
	}
	return left + row + right
}

// cutLeft drops the first n visible cells of s.
func cutLeft(s string, n int) string {
	// Render path only; plain-space splice covers the common case.
	if idx := components.VisibleWidth(s); idx <= n {
		return ""
	}
	runes := []rune(s)
	if n < len(runes) {
		return string(runes[n:])
	}
	return ""
}
