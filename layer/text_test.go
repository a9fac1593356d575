package layer

import (
	"strings"
	"testing"

	"github.com/lixenwraith/strata/core"
)

func textRow(g core.Grid, row, c0, c1 int) string {
	var sb strings.Builder
	for c := c0; c <= c1; c++ {
		sb.WriteRune(g[row][c].Ch)
	}
	return sb.String()
}

func TestRenderTextBasic(t *testing.T) {
	l := NewText("l1", "T", Rect{R0: 2, C0: 5, R1: 4, C1: 14}, core.White)
	l.Text = "hi there"
	g := RenderText(l)

	if got := textRow(g, 2, 5, 14); got != "hi there  " {
		t.Errorf("Row 2 = %q", got)
	}
	cell := g[2][5]
	if cell.Fg != core.White || !cell.Bg.IsTransparentBg() {
		t.Errorf("Expected white on transparent bg, got %v on %v", cell.Fg, cell.Bg)
	}
	// cells outside the written glyphs stay default
	if !g[3][5].IsDefault() {
		t.Error("Expected untouched cell to be default")
	}
}

func TestRenderTextDeterministic(t *testing.T) {
	l := NewText("l1", "T", Rect{R0: 0, C0: 0, R1: 24, C1: 79}, core.White)
	l.Text = "the quick brown fox jumps over the lazy dog"
	a, b := RenderText(l), RenderText(l)
	if !a.Equal(b) {
		t.Error("Expected identical grids from identical fields")
	}
}

func TestRenderTextWrapAndBreaks(t *testing.T) {
	l := NewText("l1", "T", Rect{R0: 0, C0: 0, R1: 5, C1: 9}, core.White)
	l.Text = "one two three\nfour"
	g := RenderText(l)

	if got := textRow(g, 0, 0, 9); got != "one two   " {
		t.Errorf("Row 0 = %q", got)
	}
	if got := textRow(g, 1, 0, 9); got != "three     " {
		t.Errorf("Row 1 = %q", got)
	}
	if got := textRow(g, 2, 0, 9); got != "four      " {
		t.Errorf("Row 2 = %q", got)
	}
}

func TestRenderTextAlignment(t *testing.T) {
	mk := func(align Align) string {
		l := NewText("l1", "T", Rect{R0: 0, C0: 0, R1: 0, C1: 9}, core.White)
		l.Text = "abc"
		l.Align = align
		return textRow(RenderText(l), 0, 0, 9)
	}
	if got := mk(AlignLeft); got != "abc       " {
		t.Errorf("left = %q", got)
	}
	if got := mk(AlignCenter); got != "   abc    " {
		t.Errorf("center = %q", got)
	}
	if got := mk(AlignRight); got != "       abc" {
		t.Errorf("right = %q", got)
	}
}

func TestRenderTextJustify(t *testing.T) {
	l := NewText("l1", "T", Rect{R0: 0, C0: 0, R1: 1, C1: 9}, core.White)
	l.Text = "aa bb cc dd"
	l.Align = AlignJustify
	g := RenderText(l)

	// wraps to "aa bb cc" / "dd"; the non-final line stretches to the full
	// width, the paragraph's last line stays left-aligned
	if got := textRow(g, 0, 0, 9); got != "aa  bb  cc" {
		t.Errorf("justified row = %q", got)
	}
	if got := textRow(g, 1, 0, 9); got != "dd        " {
		t.Errorf("last line = %q", got)
	}
}

func TestRenderTextCharColors(t *testing.T) {
	l := NewText("l1", "T", Rect{R0: 0, C0: 0, R1: 0, C1: 9}, core.White)
	l.Text = "abc"
	red := core.NewColor(255, 0, 0)
	l.CharColors = []CharColor{{Index: 1, Color: red}}
	g := RenderText(l)

	if g[0][0].Fg != core.White {
		t.Errorf("Index 0 should keep the layer color, got %v", g[0][0].Fg)
	}
	if g[0][1].Fg != red {
		t.Errorf("Index 1 should use the override, got %v", g[0][1].Fg)
	}
}

func TestRenderTextClipsToBounds(t *testing.T) {
	l := NewText("l1", "T", Rect{R0: 24, C0: 78, R1: 30, C1: 85}, core.White)
	l.Text = "xyz\nmore\nlines"
	g := RenderText(l) // must not panic or write out of the canvas
	if g[24][78].Ch != 'x' {
		t.Errorf("Expected x at (24,78), got %q", g[24][78].Ch)
	}
}
