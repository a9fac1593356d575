package draw

import (
	"github.com/lixenwraith/strata/core"
)

// PaintPixel writes one pixel of the 80×50 plane in the given color,
// preserving whatever the cell's other half shows. Painting over a plain
// cell promotes it to half-pixel form with the cell's background as both
// halves' starting color; painting over an empty cell leaves the other
// half transparent.
func PaintPixel(grid core.Grid, px, py int, color core.Color) []Change {
	cv := newCanvas(grid)
	paintPixel(cv, px, py, color)
	return cv.changes()
}

// ErasePixel clears one pixel to the transparent-half sentinel. A cell
// whose halves are both transparent afterwards reverts to the default cell.
func ErasePixel(grid core.Grid, px, py int) []Change {
	cv := newCanvas(grid)
	erasePixel(cv, px, py)
	return cv.changes()
}

func paintPixel(cv *canvas, px, py int, color core.Color) {
	if px < 0 || px >= PixelWidth || py < 0 || py >= PixelHeight {
		return
	}
	row, top := py/2, py%2 == 0
	cur := toHalves(cv.at(row, px))
	if top {
		cur.Fg = color
	} else {
		cur.Bg = color
	}
	cv.set(row, px, cur)
}

func erasePixel(cv *canvas, px, py int) {
	if px < 0 || px >= PixelWidth || py < 0 || py >= PixelHeight {
		return
	}
	row, top := py/2, py%2 == 0
	cur := cv.at(row, px)
	if cur.IsDefault() {
		return
	}
	half := toHalves(cur)
	if top {
		half.Fg = core.TransparentHalf
	} else {
		half.Bg = core.TransparentHalf
	}
	if half.Fg.IsTransparentHalf() && half.Bg.IsTransparentHalf() {
		cv.set(row, px, core.DefaultCell())
		return
	}
	cv.set(row, px, half)
}

// toHalves returns c in half-pixel form: half-pixel cells pass through,
// the default cell starts fully transparent, and any other cell starts
// with its background as both halves.
func toHalves(c core.Cell) core.Cell {
	if c.IsHalfPixel() {
		return c
	}
	if c.IsDefault() {
		return core.Cell{Ch: core.HalfBlock, Fg: core.TransparentHalf, Bg: core.TransparentHalf}
	}
	return core.Cell{Ch: core.HalfBlock, Fg: c.Bg, Bg: c.Bg}
}
