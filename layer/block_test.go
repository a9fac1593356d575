package layer

import (
	"testing"

	"github.com/lixenwraith/strata/core"
)

func TestFindGroupBlockEnd(t *testing.T) {
	layers := buildNested()
	if end := FindGroupBlockEnd(layers, "g1", 1); end != 4 {
		t.Errorf("g1 block end = %d, want 4", end)
	}
	if end := FindGroupBlockEnd(layers, "g2", 3); end != 4 {
		t.Errorf("g2 block end = %d, want 4", end)
	}
}

func TestExtractGroupBlock(t *testing.T) {
	layers := buildNested()
	block, rest := ExtractGroupBlock(layers, "g1")
	if len(block) != 4 || block[0].ID != "g1" || block[3].ID != "l2" {
		t.Errorf("Unexpected block %v", ids(block))
	}
	if len(rest) != 1 || rest[0].ID != "l3" {
		t.Errorf("Unexpected rest %v", ids(rest))
	}
}

func TestFindSafeInsertPos(t *testing.T) {
	layers := buildNested()
	tests := []struct {
		pos, want int
	}{
		{0, 0},  // before the block
		{1, 4},  // inside g1: snaps to block end
		{3, 4},  // inside g2 (and g1): snaps past both
		{4, 4},  // between blocks
		{5, 5},  // end of sequence
		{-2, 0}, // clamped
		{99, 5}, // clamped
	}
	for _, tt := range tests {
		if got := FindSafeInsertPos(layers, tt.pos); got != tt.want {
			t.Errorf("FindSafeInsertPos(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestDuplicateBlockGroup(t *testing.T) {
	layers := buildNested()
	gen := &IDGen{}
	gen.Sync(layers)

	out := DuplicateBlock(layers, "g1", gen)
	if len(out) != 9 {
		t.Fatalf("Expected 9 layers, got %d", len(out))
	}
	if !CheckContiguous(out) {
		t.Error("Duplicate broke the contiguous-block invariant")
	}

	// copies sit directly after the source block
	root := out[4]
	if root.Kind != KindGroup || root.Name != "Outer (Copy)" {
		t.Errorf("Expected duplicated group root named \"Outer (Copy)\", got %q", root.Name)
	}
	for i := 5; i < 8; i++ {
		if out[i].Name == "" || out[i].Name[len(out[i].Name)-1] == ')' {
			t.Errorf("Descendant %s should keep its original name, got %q", out[i].ID, out[i].Name)
		}
	}

	// no identifier overlap with the source
	src := map[string]bool{}
	for _, l := range layers {
		src[l.ID] = true
	}
	for i := 4; i < 8; i++ {
		if src[out[i].ID] {
			t.Errorf("Duplicated layer reuses source id %s", out[i].ID)
		}
	}

	// parent references remap inside the copied set only
	copyRoot := out[4]
	for i := 5; i < 8; i++ {
		for _, anc := range AncestorGroupIDs(out, out[i].ID) {
			if anc == "g1" || anc == "g2" {
				t.Errorf("Copy %s still points at a source group", out[i].ID)
			}
		}
	}
	if copyRoot.ParentID != "" {
		t.Errorf("Copied root should stay top-level, got parent %q", copyRoot.ParentID)
	}
}

func TestDuplicateBlockDeepCopiesFrames(t *testing.T) {
	l := NewDrawn("l1", "Anim")
	l.Frames = append(l.Frames, core.NewGrid())
	l.CurrentFrame = 1
	l.FrameDurationMs = 250
	layers := []*Layer{l}
	gen := &IDGen{}
	gen.Sync(layers)

	out := DuplicateBlock(layers, "l1", gen)
	if len(out) != 2 {
		t.Fatalf("Expected 2 layers, got %d", len(out))
	}
	cp := out[1]
	if cp.CurrentFrame != 1 || cp.FrameDurationMs != 250 || len(cp.Frames) != 2 {
		t.Error("Frame bookkeeping not copied")
	}
	cp.Frames[0][0][0] = core.Cell{Ch: 'X', Fg: core.White, Bg: core.Black}
	if l.Frames[0][0][0].Ch == 'X' {
		t.Error("Frames are shared between source and copy")
	}
}

func ids(layers []*Layer) []string {
	out := make([]string, len(layers))
	for i, l := range layers {
		out[i] = l.ID
	}
	return out
}
