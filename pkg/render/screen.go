// ABOUTME: Screen is the terminal collaborator contract the Renderer drives
// ABOUTME: Implementations own escape encoding, buffering and raw-mode lifecycle

package render

import "github.com/mauromedda/gridterm/pkg/grid"

// Screen is the output side of a terminal as seen by a Renderer.
// Coordinates are 0-based. Implementations may buffer until Flush.
type Screen interface {
	// Setup enters raw, non-canonical mode and prepares the display.
	Setup() error
	// Teardown restores the terminal to the state Setup found it in.
	Teardown() error

	// Size reports the terminal extent in cells.
	Size() (rows, cols int, err error)

	MoveCursor(row, col int) error
	SetStyle(style grid.Style) error
	Write(p []byte) (int, error)
	Flush() error
	ClearScreen() error
}
