package core

// Canvas dimensions are fixed
const (
	Width  = 80
	Height = 25
)

// Grid is a Height×Width rectangular array of cells, 0-indexed.
// Rows are independently allocated so mutating one row never affects another.
type Grid [][]Cell

// NewGrid returns a grid filled with the default cell
func NewGrid() Grid {
	g := make(Grid, Height)
	for r := range g {
		row := make([]Cell, Width)
		for c := range row {
			row[c] = DefaultCell()
		}
		g[r] = row
	}
	return g
}

// InBounds reports whether (row, col) addresses a cell of the grid
func InBounds(row, col int) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

// Clone returns a deep copy sharing no row storage with g
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		nr := make([]Cell, len(row))
		copy(nr, row)
		out[r] = nr
	}
	return out
}

// Equal reports cell-wise equality of two grids
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}
