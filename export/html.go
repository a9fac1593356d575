package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/strata/core"
)

// HTML returns the grid as a <pre> block of colored spans, one span per
// run of identically styled cells.
func HTML(g core.Grid) string {
	var sb strings.Builder
	sb.WriteString(`<pre style="font-family:monospace;line-height:1;background:#000">` + "\n")
	for r := 0; r < core.Height; r++ {
		var runFg, runBg core.Color
		var run strings.Builder
		open := false
		flush := func() {
			if !open {
				return
			}
			fmt.Fprintf(&sb, `<span style="color:%s;background:%s">%s</span>`,
				hex(runFg), hex(runBg), html.EscapeString(run.String()))
			run.Reset()
			open = false
		}
		for c := 0; c < core.Width; c++ {
			cell := g[r][c]
			if !open || cell.Fg != runFg || cell.Bg != runBg {
				flush()
				runFg, runBg = cell.Fg, cell.Bg
				open = true
			}
			run.WriteRune(cell.Ch)
		}
		flush()
		sb.WriteByte('\n')
	}
	sb.WriteString("</pre>\n")
	return sb.String()
}

func hex(c core.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
