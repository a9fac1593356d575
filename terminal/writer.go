// Package terminal is a raw ANSI render target. It translates cell writes
// into cursor positioning plus 24-bit SGR sequences and the literal glyph,
// bypassing terminfo entirely. Target environments: xterm-compatible
// terminals with truecolor support.
package terminal

import (
	"bufio"
	"io"

	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/draw"
)

// Writer streams cell writes to an ANSI terminal. Style sequences are
// coalesced: a color is re-emitted only when it differs from the previous
// cell's, and the cursor is repositioned only on discontinuity.
type Writer struct {
	w *bufio.Writer

	cursorRow   int
	cursorCol   int
	cursorValid bool

	lastFg    core.Color
	lastBg    core.Color
	lastValid bool
}

// NewWriter wraps out in a render target
func NewWriter(out io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(out, 131072)}
}

// Attach clears the terminal, hides the cursor, and writes the whole grid
func (t *Writer) Attach(g core.Grid) error {
	t.w.Write(csiCursorHide)
	t.w.Write(csiClear)
	t.cursorValid = false
	t.lastValid = false
	for r := 0; r < core.Height; r++ {
		for c := 0; c < core.Width; c++ {
			t.writeCell(r, c, g[r][c])
		}
	}
	return t.finish()
}

// Apply writes an incremental sequence of cell changes
func (t *Writer) Apply(changes []draw.Change) error {
	for _, ch := range changes {
		if !core.InBounds(ch.Row, ch.Col) {
			continue
		}
		t.writeCell(ch.Row, ch.Col, ch.Cell)
	}
	return t.finish()
}

// Close restores cursor visibility and default attributes
func (t *Writer) Close() error {
	t.w.Write(csiReset)
	t.w.Write(csiCursorShow)
	return t.w.Flush()
}

func (t *Writer) writeCell(row, col int, cell core.Cell) {
	if !t.cursorValid || row != t.cursorRow || col != t.cursorCol {
		writeCursorPos(t.w, row, col)
		t.cursorRow, t.cursorCol = row, col
		t.cursorValid = true
	}

	fg, bg := drawable(cell.Fg), drawable(cell.Bg)
	if !t.lastValid || fg != t.lastFg {
		writeRGB(t.w, csiFgRGB, fg.R, fg.G, fg.B)
	}
	if !t.lastValid || bg != t.lastBg {
		writeRGB(t.w, csiBgRGB, bg.R, bg.G, bg.B)
	}
	t.lastFg, t.lastBg, t.lastValid = fg, bg, true

	r := cell.Ch
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		t.w.WriteByte(byte(r))
	} else {
		t.w.WriteRune(r)
	}
	t.cursorCol++
}

func (t *Writer) finish() error {
	t.w.Write(csiReset)
	t.lastValid = false
	return t.w.Flush()
}

// drawable guards against sentinel colors reaching the wire; compositing
// never emits them
func drawable(c core.Color) core.Color {
	if !c.Opaque() {
		return core.Black
	}
	return c
}
