package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/draw"
)

// Screen renders composited cells onto a tcell screen. tcell owns cursor
// movement and escape-sequence generation; this target only maps cells to
// SetContent calls and shows after each batch.
type Screen struct {
	screen tcell.Screen

	// OffsetX, OffsetY shift the canvas origin on the terminal, letting a
	// host UI place chrome around it
	OffsetX, OffsetY int
}

// NewScreen wraps an initialized tcell screen
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Attach writes the whole grid and shows it
func (s *Screen) Attach(g core.Grid) error {
	for r := 0; r < core.Height; r++ {
		for c := 0; c < core.Width; c++ {
			s.setCell(r, c, g[r][c])
		}
	}
	s.screen.Show()
	return nil
}

// Apply draws the given cell writes and shows them
func (s *Screen) Apply(changes []draw.Change) error {
	for _, ch := range changes {
		s.setCell(ch.Row, ch.Col, ch.Cell)
	}
	s.screen.Show()
	return nil
}

func (s *Screen) setCell(row, col int, cell core.Cell) {
	style := tcell.StyleDefault.
		Foreground(toTcell(cell.Fg)).
		Background(toTcell(cell.Bg))
	s.screen.SetContent(s.OffsetX+col, s.OffsetY+row, cell.Ch, nil, style)
}

// toTcell converts a drawable color; sentinels never reach a render target,
// but map to black rather than corrupting output if they ever do
func toTcell(c core.Color) tcell.Color {
	if !c.Opaque() {
		return tcell.ColorBlack
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
