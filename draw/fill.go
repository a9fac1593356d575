package draw

import (
	"github.com/lixenwraith/strata/core"
)

// FloodFill replaces the 4-connected region of cells matching the seed
// cell's content, starting at (row, col), with fill. The region is bounded
// by the grid edges and by any cell whose content differs from the seed.
// Returns an empty change set when the seed already matches fill or the
// seed is out of bounds.
func FloodFill(grid core.Grid, row, col int, fill core.Cell) []Change {
	if !core.InBounds(row, col) {
		return nil
	}
	seed := grid[row][col]
	if seed == fill {
		return nil
	}

	var out []Change
	visited := make(map[Point]bool)
	queue := []Point{{row, col}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if visited[p] || !core.InBounds(p.Row, p.Col) || grid[p.Row][p.Col] != seed {
			continue
		}
		visited[p] = true
		out = append(out, Change{Row: p.Row, Col: p.Col, Cell: fill})
		queue = append(queue,
			Point{p.Row - 1, p.Col},
			Point{p.Row + 1, p.Col},
			Point{p.Row, p.Col - 1},
			Point{p.Row, p.Col + 1},
		)
	}
	return out
}
