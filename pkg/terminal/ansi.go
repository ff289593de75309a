// ABOUTME: ANSI escape fragments and allocation-free encoders for cursor and SGR sequences
// ABOUTME: Numbers are appended with strconv into caller-owned scratch space

package terminal

import (
	"strconv"

	"github.com/mauromedda/gridterm/pkg/grid"
)

const (
	csi = "\x1b["

	sgrReset      = "\x1b[0m"
	clearScreen   = "\x1b[2J\x1b[H"
	cursorHide    = "\x1b[?25l"
	cursorShow    = "\x1b[?25h"
	altScreenOn   = "\x1b[?1049h"
	altScreenExit = "\x1b[?1049l"

	// DECAWM off keeps a write to the bottom-right cell from scrolling.
	autoWrapOff = "\x1b[?7l"
	autoWrapOn  = "\x1b[?7h"
)

// appendCursorPos appends CUP for a 0-based (row, col).
func appendCursorPos(b []byte, row, col int) []byte {
	b = append(b, csi...)
	b = strconv.AppendInt(b, int64(row+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col+1), 10)
	return append(b, 'H')
}

// sgrAttrs maps attribute bits to their SGR parameters.
var sgrAttrs = [...]struct {
	attr  grid.Attr
	param byte
}{
	{grid.AttrBold, '1'},
	{grid.AttrDim, '2'},
	{grid.AttrItalic, '3'},
	{grid.AttrUnderline, '4'},
	{grid.AttrBlink, '5'},
	{grid.AttrReverse, '7'},
	{grid.AttrStrikethrough, '9'},
}

// appendSGR appends a complete SGR sequence that resets and then
// establishes s, so it is correct regardless of prior state.
func appendSGR(b []byte, s grid.Style, mode ColorMode) []byte {
	b = append(b, csi...)
	b = append(b, '0')
	for _, a := range sgrAttrs {
		if s.Attrs&a.attr != 0 {
			b = append(b, ';', a.param)
		}
	}
	b = appendColor(b, s.Fg, 30, mode)
	b = appendColor(b, s.Bg, 40, mode)
	return append(b, 'm')
}

// appendColor appends ";<params>" for c, where base is 30 for
// foreground and 40 for background. Default colors append nothing since
// the leading reset already selected them.
func appendColor(b []byte, c grid.Color, base int, mode ColorMode) []byte {
	switch {
	case c.IsIndexed():
		n := int(c.Index())
		switch {
		case n < 8:
			b = append(b, ';')
			return strconv.AppendInt(b, int64(base+n), 10)
		case n < 16:
			b = append(b, ';')
			return strconv.AppendInt(b, int64(base+60+n-8), 10)
		}
		return appendExtended(b, base, n)
	case c.IsRGB():
		r, g, bl := c.Components()
		if mode != ColorModeTrueColor {
			return appendExtended(b, base, int(rgbTo256(r, g, bl)))
		}
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(base+8), 10)
		b = append(b, ";2;"...)
		b = strconv.AppendInt(b, int64(r), 10)
		b = append(b, ';')
		b = strconv.AppendInt(b, int64(g), 10)
		b = append(b, ';')
		return strconv.AppendInt(b, int64(bl), 10)
	}
	return b
}

// appendExtended appends the 256-color form ";38;5;n" or ";48;5;n".
func appendExtended(b []byte, base, n int) []byte {
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(base+8), 10)
	b = append(b, ";5;"...)
	return strconv.AppendInt(b, int64(n), 10)
}
