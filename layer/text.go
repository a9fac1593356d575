package layer

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/strata/core"
)

// RenderText derives a text layer's display grid from its text, bounds,
// colors, and alignment. The result is a plain value: recomputing it from
// the same fields always yields the same grid, and it is never stored on
// the layer.
func RenderText(l *Layer) core.Grid {
	grid := core.NewGrid()
	width := l.Bounds.C1 - l.Bounds.C0 + 1
	height := l.Bounds.R1 - l.Bounds.R0 + 1
	if width <= 0 || height <= 0 {
		return grid
	}

	overrides := make(map[int]core.Color, len(l.CharColors))
	for _, cc := range l.CharColors {
		overrides[cc.Index] = cc.Color
	}

	row := 0
	for _, para := range splitParagraphs(l.Text) {
		lines := wrapWords(para, width)
		for li, ln := range lines {
			if row >= height {
				return grid
			}
			placeLine(grid, l, ln, li == len(lines)-1, width, row, overrides)
			row++
		}
	}
	return grid
}

// word is a run of non-space runes with its index into the raw text
type word struct {
	start int
	runes []rune
	width int
}

// paragraph is the rune content between explicit line breaks
type paragraph struct {
	start int
	runes []rune
}

func splitParagraphs(text string) []paragraph {
	runes := []rune(text)
	var out []paragraph
	start := 0
	for i := 0; i <= len(runes); i++ {
		if i == len(runes) || runes[i] == '\n' {
			out = append(out, paragraph{start: start, runes: runes[start:i]})
			start = i + 1
		}
	}
	return out
}

// wrapWords greedily packs a paragraph's words into lines no wider than
// width. Words wider than a whole line are hard-broken.
func wrapWords(p paragraph, width int) [][]word {
	var words []word
	i := 0
	for i < len(p.runes) {
		if p.runes[i] == ' ' {
			i++
			continue
		}
		j := i
		for j < len(p.runes) && p.runes[j] != ' ' {
			j++
		}
		w := word{start: p.start + i, runes: p.runes[i:j]}
		for _, r := range w.runes {
			w.width += runewidth.RuneWidth(r)
		}
		words = append(words, splitLongWord(w, width)...)
		i = j
	}

	lines := [][]word{nil}
	lineW := 0
	for _, w := range words {
		need := w.width
		if len(lines[len(lines)-1]) > 0 {
			need++ // separating space
		}
		if lineW+need > width && len(lines[len(lines)-1]) > 0 {
			lines = append(lines, nil)
			lineW = 0
			need = w.width
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], w)
		lineW += need
	}
	return lines
}

// splitLongWord breaks w into width-sized pieces if it cannot fit one line
func splitLongWord(w word, width int) []word {
	if w.width <= width {
		return []word{w}
	}
	var out []word
	cur := word{start: w.start}
	for k, r := range w.runes {
		rw := runewidth.RuneWidth(r)
		if cur.width+rw > width && len(cur.runes) > 0 {
			out = append(out, cur)
			cur = word{start: w.start + k}
		}
		cur.runes = append(cur.runes, r)
		cur.width += rw
	}
	if len(cur.runes) > 0 {
		out = append(out, cur)
	}
	return out
}

// placeLine writes one wrapped line into the grid with the layer's alignment
func placeLine(grid core.Grid, l *Layer, ln []word, lastOfPara bool, width, row int, overrides map[int]core.Color) {
	if len(ln) == 0 {
		return
	}
	lineW := 0
	for i, w := range ln {
		if i > 0 {
			lineW++
		}
		lineW += w.width
	}

	// gap widths between words; alignment offsets the starting column
	col := 0
	gaps := make([]int, len(ln))
	for i := range gaps {
		gaps[i] = 1
	}
	switch l.Align {
	case AlignCenter:
		col = (width - lineW) / 2
	case AlignRight:
		col = width - lineW
	case AlignJustify:
		// distribute the slack over the gaps, left to right; the last line
		// of a paragraph and single-word lines stay left-aligned
		if !lastOfPara && len(ln) > 1 {
			extra := width - lineW
			for i := 1; i < len(ln) && extra > 0; {
				gaps[i]++
				extra--
				i++
				if i == len(ln) && extra > 0 {
					i = 1
				}
			}
		}
	}
	if col < 0 {
		col = 0
	}

	r := l.Bounds.R0 + row
	for i, w := range ln {
		if i > 0 {
			col += gaps[i]
		}
		for k, ch := range w.runes {
			rw := runewidth.RuneWidth(ch)
			if rw == 0 {
				continue
			}
			c := l.Bounds.C0 + col
			if core.InBounds(r, c) && col < width {
				fg := l.TextFg
				if ov, ok := overrides[w.start+k]; ok {
					fg = ov
				}
				grid[r][c] = core.Cell{Ch: ch, Fg: fg, Bg: core.TransparentBg}
			}
			col += rw
		}
	}
}
