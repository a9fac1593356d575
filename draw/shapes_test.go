package draw

import (
	"testing"

	"github.com/lixenwraith/strata/core"
)

func TestLineHorizontal(t *testing.T) {
	g := core.NewGrid()
	changes := Line(g, 2, 4, 6, 4, red) // 5 pixels on the top halves of row 2
	if len(changes) != 5 {
		t.Fatalf("Expected 5 changes, got %d", len(changes))
	}
	for i, ch := range changes {
		if ch.Row != 2 || ch.Col != 2+i {
			t.Errorf("Change %d at (%d,%d), want (2,%d)", i, ch.Row, ch.Col, 2+i)
		}
		want := core.Cell{Ch: core.HalfBlock, Fg: red, Bg: core.TransparentHalf}
		if ch.Cell != want {
			t.Errorf("Change %d cell = %v, want %v", i, ch.Cell, want)
		}
	}
}

func TestLineVerticalMergesHalves(t *testing.T) {
	g := core.NewGrid()
	// pixels y=4..7 cover rows 2 and 3, both halves of each
	changes := Line(g, 0, 4, 0, 7, red)
	if len(changes) != 2 {
		t.Fatalf("Expected 2 changes, got %d", len(changes))
	}
	want := core.Cell{Ch: core.HalfBlock, Fg: red, Bg: red}
	for _, ch := range changes {
		if ch.Cell != want {
			t.Errorf("Cell at (%d,%d) = %v, want %v", ch.Row, ch.Col, ch.Cell, want)
		}
	}
}

func TestLineDiagonal(t *testing.T) {
	g := core.NewGrid()
	changes := Line(g, 0, 0, 3, 3, red)
	// Bresenham visits (0,0) (1,1) (2,2) (3,3): columns 0..3, one half each
	if len(changes) != 4 {
		t.Fatalf("Expected 4 changes, got %d", len(changes))
	}
	for _, ch := range changes {
		if !ch.Cell.IsHalfPixel() {
			t.Errorf("Cell at (%d,%d) is not half-pixel form: %v", ch.Row, ch.Col, ch.Cell)
		}
	}
}

func TestRectOutline(t *testing.T) {
	g := core.NewGrid()
	// 4×4 pixel rect: border is 12 pixels, interior 4 untouched
	changes := Rect(g, 2, 2, 5, 5, red, false)
	Apply(g, changes)
	inner := g[1][3] // pixel (3,3) is the bottom half of row 1
	if inner.Ch == core.HalfBlock && inner.Bg == red {
		t.Error("Outline rect painted an interior pixel")
	}
	if g[1][2].Bg != red { // pixel (2,3): bottom half of row 1, border
		t.Errorf("Border pixel missing, cell = %v", g[1][2])
	}
}

func TestRectFilled(t *testing.T) {
	g := core.NewGrid()
	changes := Rect(g, 0, 0, 3, 3, red, true)
	// 16 pixels collapse into 8 full cells: rows 0-1, cols 0-3
	if len(changes) != 8 {
		t.Fatalf("Expected 8 changes, got %d", len(changes))
	}
	want := core.Cell{Ch: core.HalfBlock, Fg: red, Bg: red}
	for _, ch := range changes {
		if ch.Cell != want {
			t.Errorf("Cell at (%d,%d) = %v, want %v", ch.Row, ch.Col, ch.Cell, want)
		}
	}
}

func TestRectSwappedCorners(t *testing.T) {
	g := core.NewGrid()
	a := Rect(g, 3, 3, 0, 0, red, true)
	b := Rect(g, 0, 0, 3, 3, red, true)
	if len(a) != len(b) {
		t.Errorf("Swapped corners produced %d changes, normal order %d", len(a), len(b))
	}
}
