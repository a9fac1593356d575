// Package compose merges an ordered layer sequence into displayable cells.
//
// Resolution walks the stack top-down. A plain opaque cell wins outright.
// Half-pixel cells resolve their two vertical halves independently across
// the stack, stopping as soon as both halves are opaque. Text-like cells
// contribute glyph and foreground over whatever background the layers
// beneath resolve to. Sentinel colors never appear in a composited cell.
package compose

import (
	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/layer"
)

// cellFn supplies the cell a layer exposes at the coordinate under
// composition; the override variant swaps in a preview cell here.
type cellFn func(l *layer.Layer) core.Cell

// CompositeCell resolves the visible cell at (row, col) for the given
// layer sequence (bottom-to-top order).
func CompositeCell(layers []*layer.Layer, row, col int) core.Cell {
	return compositeFrom(layers, len(layers)-1, row, col, nil)
}

// CompositeCellWithOverride is CompositeCell with overrideCell substituted
// for the active layer's stored cell, used to preview an uncommitted stroke.
// The result equals committing overrideCell and calling CompositeCell.
func CompositeCellWithOverride(layers []*layer.Layer, row, col int, activeID string, overrideCell core.Cell) core.Cell {
	return compositeFrom(layers, len(layers)-1, row, col, func(l *layer.Layer) core.Cell {
		if l.ID == activeID {
			return overrideCell
		}
		return cellOf(l, row, col)
	})
}

// CompositeGrid resolves every coordinate. The result shares no storage
// with any layer.
func CompositeGrid(layers []*layer.Layer) core.Grid {
	out := core.NewGrid()
	grids := make(map[string]core.Grid, len(layers))
	visible := make([]*layer.Layer, 0, len(layers))
	for _, l := range layers {
		if l.Kind == layer.KindGroup || layer.Hidden(layers, l) {
			continue
		}
		visible = append(visible, l)
		grids[l.ID] = l.Grid() // text grids derive once, not per cell
	}
	for r := 0; r < core.Height; r++ {
		for c := 0; c < core.Width; c++ {
			out[r][c] = compositeVisible(visible, len(visible)-1, func(l *layer.Layer) core.Cell {
				return grids[l.ID][r][c]
			})
		}
	}
	return out
}

// compositeFrom resolves the coordinate considering layers[0:top+1] only
func compositeFrom(layers []*layer.Layer, top, row, col int, cells cellFn) core.Cell {
	if cells == nil {
		cells = func(l *layer.Layer) core.Cell { return cellOf(l, row, col) }
	}
	visible := make([]*layer.Layer, 0, top+1)
	for i := 0; i <= top && i < len(layers); i++ {
		l := layers[i]
		if l.Kind == layer.KindGroup || layer.Hidden(layers, l) {
			continue
		}
		visible = append(visible, l)
	}
	return compositeVisible(visible, len(visible)-1, cells)
}

// compositeVisible runs the top-down resolution over pre-filtered layers
func compositeVisible(visible []*layer.Layer, top int, cells cellFn) core.Cell {
	var topC, botC core.Color
	topSet, botSet := false, false
	halfMode := false

	for i := top; i >= 0; i-- {
		c := cells(visible[i])
		if c.IsEmpty() {
			continue
		}

		switch {
		case c.IsHalfPixel():
			halfMode = true
			if !topSet && !c.Fg.IsTransparentHalf() {
				topC, topSet = c.Fg, true
			}
			if !botSet && !c.Bg.IsTransparentHalf() {
				botC, botSet = c.Bg, true
			}
			if topSet && botSet {
				return core.Cell{Ch: core.HalfBlock, Fg: topC, Bg: botC}
			}

		case c.IsTextLike():
			if halfMode {
				// a glyph cannot show through a single half; its resolved
				// background still can
				under := compositeVisible(visible, i-1, cells)
				return finishHalves(topC, botC, topSet, botSet, under)
			}
			under := compositeVisible(visible, i-1, cells)
			return core.Cell{Ch: c.Ch, Fg: c.Fg, Bg: under.Bg}

		default:
			// fully opaque cell: blocks everything beneath
			if halfMode {
				return finishHalves(topC, botC, topSet, botSet, c)
			}
			return c
		}
	}

	if halfMode {
		return finishHalves(topC, botC, topSet, botSet, core.DefaultCell())
	}
	return core.DefaultCell()
}

// finishHalves fills unresolved halves from an already-composited cell
// beneath the half stack. A half-block underneath contributes its matching
// half; any other cell shows its background through both halves.
func finishHalves(topC, botC core.Color, topSet, botSet bool, under core.Cell) core.Cell {
	if !topSet {
		if under.IsHalfPixel() {
			topC = under.Fg
		} else {
			topC = under.Bg
		}
	}
	if !botSet {
		botC = under.Bg
	}
	return core.Cell{Ch: core.HalfBlock, Fg: topC, Bg: botC}
}

// cellOf returns the cell layer l exposes at (row, col)
func cellOf(l *layer.Layer, row, col int) core.Cell {
	g := l.Grid()
	if g == nil || !core.InBounds(row, col) {
		return core.DefaultCell()
	}
	return g[row][col]
}
