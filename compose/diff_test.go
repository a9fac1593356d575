package compose

import (
	"testing"

	"github.com/lixenwraith/strata/core"
)

func TestDiffGrids(t *testing.T) {
	a := core.NewGrid()
	b := a.Clone()
	if got := DiffGrids(a, b); len(got) != 0 {
		t.Errorf("Equal grids should diff empty, got %d changes", len(got))
	}

	b[7][40] = core.Cell{Ch: '*', Fg: core.White, Bg: core.Black}
	got := DiffGrids(a, b)
	if len(got) != 1 {
		t.Fatalf("Expected exactly one change, got %d", len(got))
	}
	if got[0].Row != 7 || got[0].Col != 40 || got[0].Cell.Ch != '*' {
		t.Errorf("Unexpected change %+v", got[0])
	}
}
