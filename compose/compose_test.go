package compose

import (
	"testing"

	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/layer"
)

var (
	red   = core.NewColor(255, 0, 0)
	green = core.NewColor(0, 255, 0)
	blue  = core.NewColor(0, 0, 255)
)

func drawnWith(id string, cells map[[2]int]core.Cell) *layer.Layer {
	l := layer.NewDrawn(id, id)
	for pos, c := range cells {
		l.Frames[0][pos[0]][pos[1]] = c
	}
	return l
}

func TestSingleLayerIdentity(t *testing.T) {
	l := drawnWith("l1", map[[2]int]core.Cell{
		{0, 0}:  {Ch: 'A', Fg: red, Bg: blue},
		{5, 5}:  {Ch: core.HalfBlock, Fg: red, Bg: core.TransparentHalf},
		{10, 2}: {Ch: 'x', Fg: green, Bg: core.TransparentBg},
	})
	got := CompositeGrid([]*layer.Layer{l})

	// opaque and default cells come through unchanged
	if got[0][0] != l.Frames[0][0][0] {
		t.Errorf("Opaque cell changed: %v", got[0][0])
	}
	if !got[24][79].IsDefault() {
		t.Errorf("Empty cell should composite to default, got %v", got[24][79])
	}
	// sentinels resolve against nothing: transparent half falls to the
	// default background, text bg falls to the default background
	want := core.Cell{Ch: core.HalfBlock, Fg: red, Bg: core.Black}
	if got[5][5] != want {
		t.Errorf("Half cell = %v, want %v", got[5][5], want)
	}
	wantText := core.Cell{Ch: 'x', Fg: green, Bg: core.Black}
	if got[10][2] != wantText {
		t.Errorf("Text cell = %v, want %v", got[10][2], wantText)
	}
}

func TestCompositeGridNoAliasing(t *testing.T) {
	l := layer.NewDrawn("l1", "A")
	out := CompositeGrid([]*layer.Layer{l})
	out[0][0] = core.Cell{Ch: '!', Fg: red, Bg: blue}
	if l.Frames[0][0][0].Ch == '!' {
		t.Error("Composite output aliases layer storage")
	}
}

func TestHalfPixelAccumulation(t *testing.T) {
	bottom := drawnWith("l1", map[[2]int]core.Cell{
		{0, 0}: {Ch: core.HalfBlock, Fg: core.TransparentHalf, Bg: blue},
	})
	top := drawnWith("l2", map[[2]int]core.Cell{
		{0, 0}: {Ch: core.HalfBlock, Fg: red, Bg: core.TransparentHalf},
	})
	got := CompositeCell([]*layer.Layer{bottom, top}, 0, 0)
	want := core.Cell{Ch: core.HalfBlock, Fg: red, Bg: blue}
	if got != want {
		t.Errorf("Accumulated halves = %v, want %v", got, want)
	}
}

func TestHalfPixelShortCircuit(t *testing.T) {
	bottom := drawnWith("l1", map[[2]int]core.Cell{
		{0, 0}: {Ch: 'Z', Fg: green, Bg: green},
	})
	top := drawnWith("l2", map[[2]int]core.Cell{
		{0, 0}: {Ch: core.HalfBlock, Fg: red, Bg: blue},
	})
	got := CompositeCell([]*layer.Layer{bottom, top}, 0, 0)
	want := core.Cell{Ch: core.HalfBlock, Fg: red, Bg: blue}
	if got != want {
		t.Errorf("Fully opaque half cell should win, got %v", got)
	}
}

func TestHalfOverOpaque(t *testing.T) {
	// the transparent half shows the lower cell's background
	bottom := drawnWith("l1", map[[2]int]core.Cell{
		{0, 0}: {Ch: '#', Fg: green, Bg: blue},
	})
	top := drawnWith("l2", map[[2]int]core.Cell{
		{0, 0}: {Ch: core.HalfBlock, Fg: red, Bg: core.TransparentHalf},
	})
	got := CompositeCell([]*layer.Layer{bottom, top}, 0, 0)
	want := core.Cell{Ch: core.HalfBlock, Fg: red, Bg: blue}
	if got != want {
		t.Errorf("Half over opaque = %v, want %v", got, want)
	}
}

func TestTextOverLayers(t *testing.T) {
	bottom := drawnWith("l1", map[[2]int]core.Cell{
		{0, 0}: {Ch: ' ', Fg: core.MidGray, Bg: blue},
	})
	top := drawnWith("l2", map[[2]int]core.Cell{
		{0, 0}: {Ch: 'T', Fg: red, Bg: core.TransparentBg},
	})
	got := CompositeCell([]*layer.Layer{bottom, top}, 0, 0)
	want := core.Cell{Ch: 'T', Fg: red, Bg: blue}
	if got != want {
		t.Errorf("Text over color = %v, want %v", got, want)
	}
}

func TestOpaqueBlocksLowerLayers(t *testing.T) {
	bottom := drawnWith("l1", map[[2]int]core.Cell{
		{0, 0}: {Ch: 'A', Fg: red, Bg: blue},
	})
	top := drawnWith("l2", map[[2]int]core.Cell{
		{0, 0}: {Ch: 'B', Fg: green, Bg: core.Black},
	})
	got := CompositeCell([]*layer.Layer{bottom, top}, 0, 0)
	if got.Ch != 'B' {
		t.Errorf("Expected top opaque cell to win, got %q", got.Ch)
	}
}

func TestHiddenLayerAndGroupSkipped(t *testing.T) {
	g := layer.NewGroup("g1", "G")
	child := drawnWith("l1", map[[2]int]core.Cell{
		{0, 0}: {Ch: 'C', Fg: red, Bg: blue},
	})
	child.ParentID = "g1"
	layers := []*layer.Layer{g, child}

	if got := CompositeCell(layers, 0, 0); got.Ch != 'C' {
		t.Fatalf("Expected child visible, got %q", got.Ch)
	}
	g.Visible = false
	if got := CompositeCell(layers, 0, 0); !got.IsDefault() {
		t.Errorf("Expected hidden group to hide its child, got %v", got)
	}
}

func TestOverrideMatchesCommit(t *testing.T) {
	base := drawnWith("l1", map[[2]int]core.Cell{
		{3, 3}: {Ch: core.HalfBlock, Fg: core.TransparentHalf, Bg: blue},
	})
	top := drawnWith("l2", nil)
	layers := []*layer.Layer{base, top}
	override := core.Cell{Ch: core.HalfBlock, Fg: red, Bg: core.TransparentHalf}

	preview := CompositeCellWithOverride(layers, 3, 3, "l2", override)

	top.Frames[0][3][3] = override
	committed := CompositeCell(layers, 3, 3)
	if preview != committed {
		t.Errorf("Preview %v differs from committed %v", preview, committed)
	}
}

func TestEmptyStack(t *testing.T) {
	if got := CompositeCell(nil, 0, 0); !got.IsDefault() {
		t.Errorf("Expected default cell from empty stack, got %v", got)
	}
}
