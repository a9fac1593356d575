package layer

import (
	"testing"
)

func TestIDGenSequences(t *testing.T) {
	gen := &IDGen{}
	if id := gen.NextLayerID(); id != "l1" {
		t.Errorf("Expected l1, got %s", id)
	}
	if id := gen.NextLayerID(); id != "l2" {
		t.Errorf("Expected l2, got %s", id)
	}
	if id := gen.NextGroupID(); id != "g1" {
		t.Errorf("Expected g1, got %s", id)
	}
}

func TestIDGenSync(t *testing.T) {
	gen := &IDGen{}
	layers := []*Layer{
		NewDrawn("l7", "A"),
		NewGroup("g3", "G"),
		NewDrawn("imported", "B"), // non-numeric ids are ignored
		NewDrawn("l2", "C"),
	}
	gen.Sync(layers)
	if id := gen.NextLayerID(); id != "l8" {
		t.Errorf("Expected l8 after sync, got %s", id)
	}
	if id := gen.NextGroupID(); id != "g4" {
		t.Errorf("Expected g4 after sync, got %s", id)
	}

	// sync never regresses
	gen.Sync([]*Layer{NewDrawn("l1", "old")})
	if id := gen.NextLayerID(); id != "l9" {
		t.Errorf("Expected l9, counter regressed: got %s", id)
	}
}
