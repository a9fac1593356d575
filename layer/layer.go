// Package layer maintains the ordered, parent-linked collection of canvas
// layers and groups.
//
// The tree is stored as a flat sequence plus parentId references: sequence
// order is compositing order (bottom to top), and every group's descendants
// occupy one unbroken run immediately after the group's own entry (the
// contiguous-block invariant). Traversal helpers are bounded so corrupted
// parent chains degrade instead of hanging.
package layer

import (
	"github.com/lixenwraith/strata/core"
)

// Kind discriminates the three layer variants
type Kind uint8

const (
	KindDrawn Kind = iota
	KindText
	KindGroup
)

// Align selects text-layer line alignment within its bounds
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// Rect is an inclusive cell rectangle
type Rect struct {
	R0, C0, R1, C1 int
}

// CharColor overrides the text foreground for one rune index of a text layer
type CharColor struct {
	Index int
	Color core.Color
}

// Layer is one entry of the layer sequence. Kind selects which of the
// variant field groups is meaningful; consumers switch on Kind exhaustively.
type Layer struct {
	ID       string
	Name     string
	Visible  bool
	ParentID string // owning group, empty at top level
	Tags     []string

	Kind Kind

	// Drawn variant: animation frames. Invariant: len(Frames) >= 1 and
	// 0 <= CurrentFrame < len(Frames).
	Frames          []core.Grid
	CurrentFrame    int
	FrameDurationMs int

	// Text variant: the grid is derived from these fields on demand and
	// never stored.
	Text       string
	Bounds     Rect
	TextFg     core.Color
	CharColors []CharColor
	Align      Align

	// Group variant
	Collapsed bool
}

// DefaultFrameDurationMs is the playback speed assigned to new drawn layers
const DefaultFrameDurationMs = 100

// NewDrawn returns a visible single-frame drawn layer
func NewDrawn(id, name string) *Layer {
	return &Layer{
		ID:              id,
		Name:            name,
		Visible:         true,
		Kind:            KindDrawn,
		Frames:          []core.Grid{core.NewGrid()},
		FrameDurationMs: DefaultFrameDurationMs,
	}
}

// NewText returns a visible text layer covering bounds
func NewText(id, name string, bounds Rect, fg core.Color) *Layer {
	return &Layer{
		ID:      id,
		Name:    name,
		Visible: true,
		Kind:    KindText,
		Bounds:  bounds,
		TextFg:  fg,
		Align:   AlignLeft,
	}
}

// NewGroup returns a visible empty group
func NewGroup(id, name string) *Layer {
	return &Layer{
		ID:      id,
		Name:    name,
		Visible: true,
		Kind:    KindGroup,
	}
}

// Grid returns the layer's display grid: the current animation frame for a
// drawn layer, the derived text grid for a text layer, nil for a group.
// Drawn-layer access goes through CurrentFrame on every call, so frame
// switches need no re-aliasing.
func (l *Layer) Grid() core.Grid {
	switch l.Kind {
	case KindDrawn:
		if len(l.Frames) == 0 {
			return nil
		}
		i := l.CurrentFrame
		if i < 0 || i >= len(l.Frames) {
			i = 0
		}
		return l.Frames[i]
	case KindText:
		return RenderText(l)
	default:
		return nil
	}
}

// Clone returns a deep copy of l sharing no mutable storage with it
func (l *Layer) Clone() *Layer {
	out := *l
	if l.Tags != nil {
		out.Tags = append([]string(nil), l.Tags...)
	}
	if l.Frames != nil {
		out.Frames = make([]core.Grid, len(l.Frames))
		for i, f := range l.Frames {
			out.Frames[i] = f.Clone()
		}
	}
	if l.CharColors != nil {
		out.CharColors = append([]CharColor(nil), l.CharColors...)
	}
	return &out
}
