// ABOUTME: Cursor turns a stream of UTF-8 bytes into styled cell writes on a Grid
// ABOUTME: Honors newlines, optional right-edge wrapping, and stops at the bottom row

package grid

import (
	"fmt"
	"unicode/utf8"
)

// Cursor is a write position bound to a single Grid. It is cheap to build
// and meant to be discarded after a write.
type Cursor struct {
	grid  *Grid
	row   int
	col   int
	style Style
	wrap  bool
}

// At returns a non-wrapping cursor on g at (row, col). The position may
// lie outside g; such writes simply consume nothing.
func At(g *Grid, row, col int) *Cursor {
	return &Cursor{grid: g, row: row, col: col}
}

// WrappedAt is At with wrapping: reaching the right edge continues on the
// next row instead of discarding the rest of the line.
func WrappedAt(g *Grid, row, col int) *Cursor {
	return &Cursor{grid: g, row: row, col: col, wrap: true}
}

// WithStyle sets the style applied to subsequent writes and returns c.
func (c *Cursor) WithStyle(s Style) *Cursor {
	c.style = s
	return c
}

// Position returns the current write position.
func (c *Cursor) Position() (row, col int) {
	return c.row, c.col
}

// Write stores each scalar of p into the grid and returns how many bytes
// were consumed. Writing stops early, with a nil error, once the cursor
// runs past the last row. Malformed UTF-8 stops the write with
// ErrInvalidEncoding; scalars before it have already been written.
//
// Unlike io.Writer, a short count with a nil error means the grid is full.
func (c *Cursor) Write(p []byte) (int, error) {
	g := c.grid
	if c.row >= g.height {
		return 0, nil
	}

	consumed := 0
	for consumed < len(p) {
		r, size := utf8.DecodeRune(p[consumed:])
		if r == utf8.RuneError && size <= 1 {
			return consumed, fmt.Errorf("decoding byte %d: %w", consumed, ErrInvalidEncoding)
		}

		if c.wrap && c.col >= g.width {
			c.col = 0
			c.row++
		}
		if c.row >= g.height {
			return consumed, nil
		}

		if r == '\n' {
			c.col = 0
			c.row++
		} else {
			if c.row >= 0 && c.col >= 0 && c.col < g.width {
				g.cells[c.row*g.width+c.col] = Cell{Rune: r, Style: c.style}
			}
			c.col++
		}
		consumed += size
	}
	return consumed, nil
}

// WriteString is Write for a string.
func (c *Cursor) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}
