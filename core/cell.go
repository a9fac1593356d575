package core

// HalfBlock is the glyph of a half-pixel cell. Its foreground channel colors
// the top half of the terminal cell, its background channel the bottom half.
const HalfBlock = '▀'

// Cell is the atomic canvas value: one glyph and its two color channels
type Cell struct {
	Ch rune
	Fg Color
	Bg Color
}

// DefaultCell returns the distinguished "empty" cell value
func DefaultCell() Cell {
	return Cell{Ch: ' ', Fg: MidGray, Bg: Black}
}

// IsDefault reports whether c equals the default cell
func (c Cell) IsDefault() bool {
	return c == DefaultCell()
}

// IsHalfPixel reports whether c is a half-pixel cell. Each channel of a
// half-pixel cell is independently a color or the transparent-half sentinel.
func (c Cell) IsHalfPixel() bool {
	return c.Ch == HalfBlock
}

// IsTextLike reports whether c contributes only glyph and foreground,
// letting lower layers supply the background
func (c Cell) IsTextLike() bool {
	return c.Bg.IsTransparentBg()
}

// IsEmpty reports whether c contributes nothing to a composite: the default
// cell, a text cell holding a bare space, or a half-pixel cell with both
// halves transparent.
func (c Cell) IsEmpty() bool {
	if c.IsDefault() {
		return true
	}
	if c.IsTextLike() && c.Ch == ' ' {
		return true
	}
	if c.IsHalfPixel() && c.Fg.IsTransparentHalf() && c.Bg.IsTransparentHalf() {
		return true
	}
	return false
}
