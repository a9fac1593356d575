package compose

import (
	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/draw"
)

// DiffGrids returns the cells where next differs from prev, in row-major
// order, as the write sequence for a render target. Equal grids produce an
// empty diff.
func DiffGrids(prev, next core.Grid) []draw.Change {
	var out []draw.Change
	for r := 0; r < core.Height; r++ {
		for c := 0; c < core.Width; c++ {
			if prev[r][c] != next[r][c] {
				out = append(out, draw.Change{Row: r, Col: c, Cell: next[r][c]})
			}
		}
	}
	return out
}
