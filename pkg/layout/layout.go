// Package layout splits rectangular terminal areas into sub-regions
// according to declarative constraints. The dashboard grid is built by
// splitting the screen into rows, then each row into widget slots.
//
// Constraint types:
//   - Length(n): exactly n cells
//   - Percentage(p): p percent of the available space
//   - Min(n): at least n cells, grows to absorb surplus
//   - Fill(w): remaining space proportional to weight
package layout

// Rect is a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Inner shrinks the rect by margin on every side, clamping at zero.
func (r Rect) Inner(margin int) Rect {
	if margin < 0 {
		margin = 0
	}
	out := Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Direction selects the split axis.
type Direction int

const (
	// Horizontal splits left-to-right.
	Horizontal Direction = iota
	// Vertical splits top-to-bottom.
	Vertical
)

// Constraint describes how much of the axis one region receives.
type Constraint interface {
	constraint()
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

// Percentage allocates Value percent of the available space.
type Percentage struct{ Value int }

func (Percentage) constraint() {}

// Min allocates at least Value cells and shares surplus with Fill items.
type Min struct{ Value int }

func (Min) constraint() {}

// Fill distributes leftover space proportional to Weight (0 means 1).
type Fill struct{ Weight int }

func (Fill) constraint() {}

// Split divides area along dir into one rect per constraint, with
// spacing cells between regions. Fixed constraints are allocated
// first; Min and Fill items then share what remains. If the fixed
// allocations overflow the area, every region is shrunk
// proportionally so the output always fits.
func Split(area Rect, dir Direction, spacing int, constraints ...Constraint) []Rect {
	n := len(constraints)
	if n == 0 {
		return nil
	}
	if spacing < 0 {
		spacing = 0
	}

	total := area.Width
	if dir == Vertical {
		total = area.Height
	}
	available := total - spacing*(n-1)
	if available < 0 {
		available = 0
	}

	sizes := make([]int, n)
	grow := make([]bool, n)
	weights := make([]int, n)
	fixed := 0
	totalWeight := 0

	for i, c := range constraints {
		switch v := c.(type) {
		case Length:
			sizes[i] = clamp0(v.Value)
			fixed += sizes[i]
		case Percentage:
			p := v.Value
			if p < 0 {
				p = 0
			}
			if p > 100 {
				p = 100
			}
			sizes[i] = available * p / 100
			fixed += sizes[i]
		case Min:
			sizes[i] = clamp0(v.Value)
			fixed += sizes[i]
			grow[i] = true
			weights[i] = 1
			totalWeight++
		case Fill:
			w := v.Weight
			if w <= 0 {
				w = 1
			}
			grow[i] = true
			weights[i] = w
			totalWeight += w
		}
	}

	surplus := available - fixed
	if surplus > 0 && totalWeight > 0 {
		given := 0
		last := lastGrow(grow)
		for i := 0; i < n; i++ {
			if !grow[i] {
				continue
			}
			if i == last {
				sizes[i] += surplus - given
			} else {
				share := surplus * weights[i] / totalWeight
				sizes[i] += share
				given += share
			}
		}
	} else if surplus < 0 {
		shrinkToFit(sizes, available)
	}

	rects := make([]Rect, n)
	pos := 0
	for i := 0; i < n; i++ {
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + pos, Y: area.Y, Width: sizes[i], Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + pos, Width: area.Width, Height: sizes[i]}
		}
		pos += sizes[i] + spacing
	}
	return rects
}

// shrinkToFit proportionally reduces sizes so they sum to target.
func shrinkToFit(sizes []int, target int) {
	if target <= 0 {
		for i := range sizes {
			sizes[i] = 0
		}
		return
	}
	total := 0
	for _, s := range sizes {
		total += s
	}
	if total <= target {
		return
	}
	sum := 0
	for i := range sizes {
		sizes[i] = sizes[i] * target / total
		sum += sizes[i]
	}
	for i := len(sizes) - 1; i >= 0 && sum < target; i-- {
		sizes[i] += target - sum
		sum = target
	}
}

func lastGrow(grow []bool) int {
	last := -1
	for i, g := range grow {
		if g {
			last = i
		}
	}
	return last
}

func clamp0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
