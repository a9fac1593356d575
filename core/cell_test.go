package core

import (
	"testing"
)

func TestDefaultCell(t *testing.T) {
	c := DefaultCell()
	if c.Ch != ' ' {
		t.Errorf("Expected space, got %q", c.Ch)
	}
	if c.Fg != MidGray || c.Bg != Black {
		t.Errorf("Expected mid-gray on black, got %v on %v", c.Fg, c.Bg)
	}
	if !c.IsDefault() {
		t.Error("Expected default cell to report IsDefault")
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		cell  Cell
		empty bool
	}{
		{"default", DefaultCell(), true},
		{"bare space over transparent bg", Cell{Ch: ' ', Fg: White, Bg: TransparentBg}, true},
		{"glyph over transparent bg", Cell{Ch: 'A', Fg: White, Bg: TransparentBg}, false},
		{"fully transparent half block", Cell{Ch: HalfBlock, Fg: TransparentHalf, Bg: TransparentHalf}, true},
		{"half block with one half", Cell{Ch: HalfBlock, Fg: NewColor(255, 0, 0), Bg: TransparentHalf}, false},
		{"opaque glyph", Cell{Ch: 'X', Fg: White, Bg: Black}, false},
		{"space with non-default bg", Cell{Ch: ' ', Fg: MidGray, Bg: NewColor(0, 0, 80)}, false},
	}
	for _, tt := range tests {
		if got := tt.cell.IsEmpty(); got != tt.empty {
			t.Errorf("%s: IsEmpty = %v, want %v", tt.name, got, tt.empty)
		}
	}
}

func TestSentinelsAreNotOpaque(t *testing.T) {
	if TransparentHalf.Opaque() || TransparentBg.Opaque() {
		t.Error("Expected sentinels to be non-opaque")
	}
	if TransparentHalf == TransparentBg {
		t.Error("Expected the two sentinels to be distinct values")
	}
	if NewColor(0, 0, 0) != Black || !Black.Opaque() {
		t.Error("Expected black to be a plain drawable color")
	}
}

func TestGridRowIndependence(t *testing.T) {
	g := NewGrid()
	g[3][10] = Cell{Ch: '#', Fg: White, Bg: Black}
	for r := 0; r < Height; r++ {
		if r == 3 {
			continue
		}
		if g[r][10].Ch == '#' {
			t.Fatalf("Mutating row 3 leaked into row %d", r)
		}
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid()
	g[0][0] = Cell{Ch: 'A', Fg: White, Bg: Black}
	cp := g.Clone()
	if !cp.Equal(g) {
		t.Fatal("Expected clone to equal source")
	}
	cp[0][0] = DefaultCell()
	if g[0][0].Ch != 'A' {
		t.Error("Mutating clone affected source")
	}
}
