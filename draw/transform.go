package draw

import (
	"github.com/lixenwraith/strata/core"
)

// FlipSelection mirrors a sparse cell selection around its own bounding
// box. Vertical flips additionally swap each half-pixel cell's two color
// channels (top becomes bottom); horizontal flips leave channels alone.
// Applying the same flip twice reproduces the input.
func FlipSelection(sel []Change, vertical bool) []Change {
	if len(sel) == 0 {
		return nil
	}
	r0, c0, r1, c1 := selectionBounds(sel)
	out := make([]Change, len(sel))
	for i, ch := range sel {
		nc := ch
		if vertical {
			nc.Row = r0 + r1 - ch.Row
			nc.Cell = swapHalves(nc.Cell)
		} else {
			nc.Col = c0 + c1 - ch.Col
		}
		out[i] = nc
	}
	return out
}

// FlipGrid mirrors every non-default cell of the grid around the pivot
// coordinate, clearing vacated positions and discarding cells that land
// outside the grid.
func FlipGrid(grid core.Grid, vertical bool, pivotRow, pivotCol int) []Change {
	cv := newCanvas(grid)
	for r := 0; r < core.Height; r++ {
		for c := 0; c < core.Width; c++ {
			if !grid[r][c].IsDefault() {
				cv.set(r, c, core.DefaultCell())
			}
		}
	}
	for r := 0; r < core.Height; r++ {
		for c := 0; c < core.Width; c++ {
			cell := grid[r][c]
			if cell.IsDefault() {
				continue
			}
			nr, nc := r, c
			if vertical {
				nr = 2*pivotRow - r
				cell = swapHalves(cell)
			} else {
				nc = 2*pivotCol - c
			}
			if core.InBounds(nr, nc) {
				cv.set(nr, nc, cell)
			}
		}
	}
	return cv.changes()
}

// Move captures the non-default cells at the given region, shifts them by
// (dRow, dCol), and clears the vacated sources. Destinations outside the
// grid are discarded while their sources are still cleared.
func Move(grid core.Grid, region []Point, dRow, dCol int) []Change {
	cv := newCanvas(grid)
	type carry struct {
		p    Point
		cell core.Cell
	}
	var cells []carry
	for _, p := range region {
		if !core.InBounds(p.Row, p.Col) {
			continue
		}
		cell := grid[p.Row][p.Col]
		if cell.IsDefault() {
			continue
		}
		cells = append(cells, carry{p, cell})
		cv.set(p.Row, p.Col, core.DefaultCell())
	}
	for _, c := range cells {
		nr, nc := c.p.Row+dRow, c.p.Col+dCol
		if core.InBounds(nr, nc) {
			cv.set(nr, nc, c.cell)
		}
	}
	return cv.changes()
}

// selectionBounds returns the inclusive bounding box of a non-empty selection
func selectionBounds(sel []Change) (r0, c0, r1, c1 int) {
	r0, c0 = sel[0].Row, sel[0].Col
	r1, c1 = r0, c0
	for _, ch := range sel[1:] {
		if ch.Row < r0 {
			r0 = ch.Row
		}
		if ch.Row > r1 {
			r1 = ch.Row
		}
		if ch.Col < c0 {
			c0 = ch.Col
		}
		if ch.Col > c1 {
			c1 = ch.Col
		}
	}
	return r0, c0, r1, c1
}

// swapHalves exchanges the two color channels of a half-pixel cell;
// other cells pass through unchanged
func swapHalves(c core.Cell) core.Cell {
	if !c.IsHalfPixel() {
		return c
	}
	c.Fg, c.Bg = c.Bg, c.Fg
	return c
}
