// ABOUTME: Sentinel errors for grid storage, text decoding and glyph encoding
// ABOUTME: Callers match with errors.Is; wrapped errors carry position context

package grid

import "errors"

var (
	// ErrAllocation reports that cell storage could not be obtained.
	ErrAllocation = errors.New("grid: cell storage unavailable")

	// ErrInvalidEncoding reports malformed UTF-8 handed to a Cursor.
	ErrInvalidEncoding = errors.New("grid: invalid UTF-8 input")

	// ErrEncoding reports a cell rune that has no UTF-8 form, such as a
	// surrogate half or a value above U+10FFFF.
	ErrEncoding = errors.New("grid: rune cannot be encoded")
)
