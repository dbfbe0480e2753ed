package layout

import "testing"

func TestSplitLengths(t *testing.T) {
	area := Rect{X: 0, Y: 0, Width: 30, Height: 10}
	rects := Split(area, Horizontal, 0, Length{10}, Length{5}, Length{15})
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	wantW := []int{10, 5, 15}
	wantX := []int{0, 10, 15}
	for i, r := range rects {
		if r.Width != wantW[i] || r.X != wantX[i] {
			t.Errorf("rect %d = %+v, want width %d at x %d", i, r, wantW[i], wantX[i])
		}
		if r.Height != 10 {
			t.Errorf("rect %d height = %d, want 10", i, r.Height)
		}
	}
}

func TestSplitFillShares(t *testing.T) {
	area := Rect{Width: 30, Height: 5}
	rects := Split(area, Horizontal, 0, Fill{1}, Fill{2})
	if rects[0].Width != 10 {
		t.Errorf("weight-1 fill = %d, want 10", rects[0].Width)
	}
	if rects[1].Width != 20 {
		t.Errorf("weight-2 fill = %d, want 20", rects[1].Width)
	}
}

func TestSplitMinGrows(t *testing.T) {
	area := Rect{Width: 40, Height: 5}
	rects := Split(area, Horizontal, 0, Length{10}, Min{5})
	if rects[1].Width != 30 {
		t.Errorf("min slot = %d, want 30 (absorbs surplus)", rects[1].Width)
	}
}

func TestSplitSpacing(t *testing.T) {
	area := Rect{Width: 22, Height: 5}
	rects := Split(area, Horizontal, 2, Length{10}, Length{10})
	if rects[1].X != 12 {
		t.Errorf("second rect at x=%d, want 12", rects[1].X)
	}
}

func TestSplitOverflowShrinks(t *testing.T) {
	area := Rect{Width: 10, Height: 5}
	rects := Split(area, Horizontal, 0, Length{10}, Length{10})
	total := rects[0].Width + rects[1].Width
	if total > 10 {
		t.Errorf("allocations sum %d, want <= 10", total)
	}
}

func TestSplitVertical(t *testing.T) {
	area := Rect{Width: 20, Height: 12}
	rects := Split(area, Vertical, 0, Percentage{50}, Fill{1})
	if rects[0].Height != 6 {
		t.Errorf("percentage row = %d, want 6", rects[0].Height)
	}
	if rects[1].Y != 6 || rects[1].Height != 6 {
		t.Errorf("fill row = %+v, want y=6 height=6", rects[1])
	}
}

func TestGrid(t *testing.T) {
	area := Rect{Width: 40, Height: 20}
	rows := []Row{
		{Height: Length{4}, Slots: []Constraint{Fill{1}}},
		{Height: Fill{1}, Slots: []Constraint{Fill{1}, Fill{1}}},
	}
	grid := Grid(area, 0, rows)
	if len(grid) != 2 || len(grid[0]) != 1 || len(grid[1]) != 2 {
		t.Fatalf("unexpected grid shape: %v", grid)
	}
	if grid[0][0].Height != 4 {
		t.Errorf("header height = %d, want 4", grid[0][0].Height)
	}
	if grid[1][0].Width != 20 || grid[1][1].X != 20 {
		t.Errorf("second row slots wrong: %+v", grid[1])
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("expected corner points inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) {
		t.Error("expected exclusive edges outside")
	}
}

func TestRectInner(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 6}
	in := r.Inner(1)
	if in.X != 1 || in.Y != 1 || in.Width != 8 || in.Height != 4 {
		t.Errorf("Inner(1) = %+v", in)
	}
	if !(Rect{Width: 1, Height: 1}).Inner(2).Empty() {
		t.Error("over-shrunk rect should be empty")
	}
}

func TestCentered(t *testing.T) {
	area := Rect{Width: 40, Height: 20}
	c := Centered(area, 20, 10)
	if c.X != 10 || c.Y != 5 {
		t.Errorf("Centered = %+v, want x=10 y=5", c)
	}
	big := Centered(area, 100, 100)
	if big.Width != 40 || big.Height != 20 {
		t.Errorf("oversized overlay should clamp, got %+v", big)
	}
}
