package compose

import (
	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/layer"
)

// MergeDown merges the layer with the given id into the layer directly
// beneath it, returning the new sequence. The two layers are replaced by
// one drawn layer carrying the lower layer's identity, name, visibility,
// parent, and tags, whose grid is the pairwise composite of the two source
// grids. Both sources are treated as visible for the merge itself,
// whatever their flags say. Only the current animation frame survives.
//
// Returns nil (no-op) when id is the bottom layer or unknown, or when
// either the target or the layer beneath it is a group.
func MergeDown(layers []*layer.Layer, id string) []*layer.Layer {
	i := layer.IndexOf(layers, id)
	if i <= 0 {
		return nil
	}
	upper, lower := layers[i], layers[i-1]
	if upper.Kind == layer.KindGroup || lower.Kind == layer.KindGroup {
		return nil
	}

	// detached pair, forced visible, so group visibility and the layers'
	// own flags cannot leak into the merged pixels
	a := lower.Clone()
	b := upper.Clone()
	a.Visible, b.Visible = true, true
	a.ParentID, b.ParentID = "", ""
	pair := []*layer.Layer{a, b}

	merged := layer.NewDrawn(lower.ID, lower.Name)
	merged.Visible = lower.Visible
	merged.ParentID = lower.ParentID
	if lower.Tags != nil {
		merged.Tags = append([]string(nil), lower.Tags...)
	}
	if lower.Kind == layer.KindDrawn {
		merged.FrameDurationMs = lower.FrameDurationMs
	}
	// derive source grids once; text grids are recomputed per call otherwise
	ga, gb := a.Grid(), b.Grid()
	src := map[string]core.Grid{a.ID: ga, b.ID: gb}

	grid := merged.Frames[0]
	for r := 0; r < core.Height; r++ {
		for c := 0; c < core.Width; c++ {
			row, col := r, c
			grid[r][c] = compositeVisible(pair, 1, func(l *layer.Layer) core.Cell {
				return src[l.ID][row][col]
			})
		}
	}

	out := make([]*layer.Layer, 0, len(layers)-1)
	out = append(out, layers[:i-1]...)
	out = append(out, merged)
	out = append(out, layers[i+1:]...)
	return out
}
