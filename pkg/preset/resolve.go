package preset

import (
	"gitlab.com/tinyland/lab/homedeck/pkg/layout"
)

// Resolve places every widget of the preset onto area and returns
// the rect assigned to each widget ID. Rows split the vertical space
// by weight; widgets split each row evenly.
func Resolve(p Preset, area layout.Rect, spacing int) map[string]layout.Rect {
	rows := make([]layout.Row, len(p.Rows))
	for i, ids := range p.Rows {
		weight := 1
		if i < len(p.RowWeights) && p.RowWeights[i] > 0 {
			weight = p.RowWeights[i]
		}
		slots := make([]layout.Constraint, len(ids))
		for j := range ids {
			slots[j] = layout.Fill{Weight: 1}
		}
		rows[i] = layout.Row{Height: layout.Fill{Weight: weight}, Slots: slots}
	}

	grid := layout.Grid(area, spacing, rows)

	out := make(map[string]layout.Rect)
	for i, ids := range p.Rows {
		for j, id := range ids {
			out[id] = grid[i][j]
		}
	}
	return out
}
