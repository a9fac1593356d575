package draw

import (
	"github.com/lixenwraith/strata/core"
)

// Line rasterizes a straight pixel line between two points of the 80×50
// plane (Bresenham), returning the merged cell deltas.
func Line(grid core.Grid, x0, y0, x1, y1 int, color core.Color) []Change {
	cv := newCanvas(grid)
	linePixels(x0, y0, x1, y1, func(x, y int) {
		paintPixel(cv, x, y, color)
	})
	return cv.changes()
}

// Rect rasterizes an axis-aligned rectangle between two corner pixels.
// The filled variant paints every covered pixel exactly once; the outline
// variant paints only the border.
func Rect(grid core.Grid, x0, y0, x1, y1 int, color core.Color, filled bool) []Change {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	cv := newCanvas(grid)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if filled || y == y0 || y == y1 || x == x0 || x == x1 {
				paintPixel(cv, x, y, color)
			}
		}
	}
	return cv.changes()
}

// linePixels walks the Bresenham discretization of (x0,y0)-(x1,y1)
func linePixels(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
