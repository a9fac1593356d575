// Package draw computes cell deltas for the raster tools: half-pixel paint
// and erase, line and rectangle rasterization, flood fill, flips, and moves.
//
// Every operation is pure: it reads a grid (or a sparse selection) and
// returns the ordered set of coordinate→cell changes to apply, without
// mutating its input. Half-pixel tools address a virtual 80×50 pixel plane,
// two vertical pixels per character cell.
package draw

import (
	"sort"

	"github.com/lixenwraith/strata/core"
)

// Pixel-plane dimensions: one cell holds two vertically stacked pixels
const (
	PixelWidth  = core.Width
	PixelHeight = core.Height * 2
)

// Change is one coordinate→cell delta
type Change struct {
	Row, Col int
	Cell     core.Cell
}

// Point addresses one cell
type Point struct {
	Row, Col int
}

// Apply writes changes into grid, skipping out-of-bounds coordinates
func Apply(grid core.Grid, changes []Change) {
	for _, ch := range changes {
		if core.InBounds(ch.Row, ch.Col) {
			grid[ch.Row][ch.Col] = ch.Cell
		}
	}
}

// canvas accumulates pending cell writes over a read-only grid, so multi
// pixel operations observe their own earlier writes within one tool stroke
type canvas struct {
	grid    core.Grid
	pending map[Point]core.Cell
}

func newCanvas(grid core.Grid) *canvas {
	return &canvas{grid: grid, pending: make(map[Point]core.Cell)}
}

func (cv *canvas) at(row, col int) core.Cell {
	if c, ok := cv.pending[Point{row, col}]; ok {
		return c
	}
	if !core.InBounds(row, col) {
		return core.DefaultCell()
	}
	return cv.grid[row][col]
}

func (cv *canvas) set(row, col int, c core.Cell) {
	if core.InBounds(row, col) {
		cv.pending[Point{row, col}] = c
	}
}

// changes returns the accumulated deltas in row-major order, dropping
// writes that match the underlying grid
func (cv *canvas) changes() []Change {
	out := make([]Change, 0, len(cv.pending))
	for p, c := range cv.pending {
		if cv.grid[p.Row][p.Col] == c {
			continue
		}
		out = append(out, Change{Row: p.Row, Col: p.Col, Cell: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
