// Package export renders fully-composited grids into portable formats:
// ANSI text, plain text, and HTML. The compositing engine supplies grids
// with every sentinel already resolved.
package export

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/strata/compose"
	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/layer"
)

// ANSI returns the grid as lines of truecolor escape sequences, each line
// reset at its end.
func ANSI(g core.Grid) string {
	var sb strings.Builder
	for r := 0; r < core.Height; r++ {
		var lastFg, lastBg core.Color
		styled := false
		for c := 0; c < core.Width; c++ {
			cell := g[r][c]
			if !styled || cell.Fg != lastFg {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", cell.Fg.R, cell.Fg.G, cell.Fg.B)
			}
			if !styled || cell.Bg != lastBg {
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", cell.Bg.R, cell.Bg.G, cell.Bg.B)
			}
			lastFg, lastBg, styled = cell.Fg, cell.Bg, true
			sb.WriteRune(cell.Ch)
		}
		sb.WriteString("\x1b[0m\n")
	}
	return sb.String()
}

// Text returns the grid's glyphs with all color dropped
func Text(g core.Grid) string {
	var sb strings.Builder
	for r := 0; r < core.Height; r++ {
		for c := 0; c < core.Width; c++ {
			sb.WriteRune(g[r][c].Ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Frames composites one grid per animation step of st. Each multi-frame
// layer loops through its own frames; the step count is the longest frame
// list. The returned duration is the playback speed of the first
// multi-frame layer, or the default when none animates.
func Frames(st *layer.State) ([]core.Grid, int) {
	steps := 1
	duration := layer.DefaultFrameDurationMs
	durationSet := false
	for _, l := range st.Layers {
		if l.Kind == layer.KindDrawn && len(l.Frames) > steps {
			steps = len(l.Frames)
		}
		if l.Kind == layer.KindDrawn && len(l.Frames) > 1 && !durationSet {
			duration = l.FrameDurationMs
			durationSet = true
		}
	}

	out := make([]core.Grid, 0, steps)
	work := layer.CloneState(st)
	for step := 0; step < steps; step++ {
		for _, l := range work.Layers {
			if l.Kind == layer.KindDrawn && len(l.Frames) > 1 {
				l.CurrentFrame = step % len(l.Frames)
			}
		}
		out = append(out, compose.CompositeGrid(work.Layers))
	}
	return out, duration
}
