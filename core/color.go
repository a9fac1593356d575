package core

// colorForm discriminates drawable colors from the two compositing sentinels
type colorForm uint8

const (
	formOpaque colorForm = iota
	formClearHalf
	formClearBg
)

// Color stores explicit 8-bit color channels.
// Two reserved sentinel values carry compositing meaning instead of channels:
// TransparentHalf (one see-through channel of a half-block cell) and
// TransparentBg (see-through cell background, used by text layers).
// Sentinels are never drawable and never survive compositing.
type Color struct {
	R, G, B uint8
	form    colorForm
}

// Sentinel colors
var (
	TransparentHalf = Color{form: formClearHalf}
	TransparentBg   = Color{form: formClearBg}
)

// Predefined drawable colors
var (
	Black   = Color{0, 0, 0, formOpaque}
	White   = Color{255, 255, 255, formOpaque}
	MidGray = Color{128, 128, 128, formOpaque}
)

// NewColor returns an opaque color with the given channels
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Opaque reports whether c is a drawable color rather than a sentinel
func (c Color) Opaque() bool {
	return c.form == formOpaque
}

// IsTransparentHalf reports whether c is the transparent-half sentinel
func (c Color) IsTransparentHalf() bool {
	return c.form == formClearHalf
}

// IsTransparentBg reports whether c is the transparent-background sentinel
func (c Color) IsTransparentBg() bool {
	return c.form == formClearBg
}
