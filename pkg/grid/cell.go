// ABOUTME: Cell, Style, Color and Attr value types shared by grids and renderers
// ABOUTME: All types are comparable so Cell equality is the diff predicate

package grid

// Attr is a bitmask of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough

	AttrNone Attr = 0
)

// Color is a packed terminal color. The zero value is the terminal's
// default color; Indexed and RGB build palette and 24-bit colors.
type Color uint32

const (
	colorIndexed Color = 1 << 24
	colorRGB     Color = 2 << 24
	colorKind    Color = 0xff << 24
)

// ColorDefault leaves the terminal's own foreground or background.
const ColorDefault Color = 0

// Indexed returns a 256-color palette entry.
func Indexed(n uint8) Color {
	return colorIndexed | Color(n)
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return colorRGB | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool { return c&colorKind == 0 }

// IsIndexed reports whether c is a palette index.
func (c Color) IsIndexed() bool { return c&colorKind == colorIndexed }

// IsRGB reports whether c is a 24-bit color.
func (c Color) IsRGB() bool { return c&colorKind == colorRGB }

// Index returns the palette index of an indexed color.
func (c Color) Index() uint8 { return uint8(c) }

// Components returns the red, green and blue channels of an RGB color.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Style is the set of display attributes attached to a Cell.
// The zero Style has default colors and no attributes.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Foreground returns a copy of s with the foreground set to c.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of s with the background set to c.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns a copy of s with attr added.
func (s Style) With(attr Attr) Style {
	s.Attrs |= attr
	return s
}

// Has reports whether every bit of attr is set on s.
func (s Style) Has(attr Attr) bool {
	return s.Attrs&attr == attr
}

// Cell is one character position: a Unicode scalar value and its style.
type Cell struct {
	Rune  rune
	Style Style
}

// DefaultCell is a blank cell with the zero Style.
var DefaultCell = Cell{Rune: ' '}

// NewCell returns a cell holding r drawn with style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// Equal reports whether both the rune and the style match.
func (c Cell) Equal(other Cell) bool {
	return c == other
}
