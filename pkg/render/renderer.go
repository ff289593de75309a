// ABOUTME: Renderer reconciles a frame Grid against a shadow of the terminal
// ABOUTME: Emits cursor moves only where a changed run starts; shadow never runs ahead of output

package render

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mauromedda/gridterm/pkg/grid"
	"github.com/mauromedda/gridterm/pkg/width"
)

// ErrTornDown is returned by Push after Teardown.
var ErrTornDown = errors.New("render: renderer torn down")

// Renderer owns the shadow buffer for one terminal: its record of what the
// terminal currently shows. It is not safe for concurrent use.
type Renderer struct {
	screen Screen
	shadow *grid.Grid
	stale  bool
	owned  bool
	enc    [utf8.UTFMax]byte
}

// New returns a Renderer drawing to s without touching its lifecycle.
// The shadow starts empty, so the first Push clears the screen.
func New(s Screen) *Renderer {
	return &Renderer{screen: s, shadow: grid.MustNew(0, 0)}
}

// Setup initializes s and returns a Renderer that tears it down again in
// Teardown. Errors from s are returned unchanged.
func Setup(s Screen) (*Renderer, error) {
	if err := s.Setup(); err != nil {
		return nil, err
	}
	r := New(s)
	r.owned = true
	return r, nil
}

// Teardown releases the shadow buffer and, for a Renderer built by Setup,
// restores the terminal. Further calls are no-ops.
func (r *Renderer) Teardown() error {
	if r.shadow == nil {
		return nil
	}
	r.shadow = nil
	if !r.owned {
		return nil
	}
	r.owned = false
	return r.screen.Teardown()
}

// Size reports the terminal extent so callers can size their frames.
func (r *Renderer) Size() (rows, cols int, err error) {
	return r.screen.Size()
}

// Shadow returns the Renderer's view of the screen. Callers must not
// modify it.
func (r *Renderer) Shadow() *grid.Grid {
	return r.shadow
}

// Invalidate forgets what the terminal shows; the next Push clears the
// screen and repaints every non-default cell.
func (r *Renderer) Invalidate() {
	r.stale = true
}

// Push updates the terminal to show frame, writing only the cells that
// differ from the shadow buffer. frame is only read.
//
// Any failure aborts the push and is returned unchanged; the shadow then
// holds exactly the cells that were written, so pushing the same frame
// again is always safe. After an output failure that next Push also
// clears and repaints the screen.
//
// Each cell is drawn in its own column: the cell after a wide rune is
// written over the rune's right half.
func (r *Renderer) Push(frame *grid.Grid) error {
	if r.shadow == nil {
		return ErrTornDown
	}

	fh, fw := frame.Size()
	sh, sw := r.shadow.Size()
	if r.stale || fh != sh || fw != sw {
		// Cell positions no longer line up with what is on screen;
		// start again from a blank terminal.
		if err := r.screen.ClearScreen(); err != nil {
			return r.outputFailed(err)
		}
		r.shadow.Clear()
		r.stale = false
	}
	if err := r.shadow.Resize(fh, fw); err != nil {
		return err
	}

	for row := 0; row < fh; row++ {
		want := frame.Row(row)
		have := r.shadow.Row(row)
		next := -1 // column the terminal cursor sits at after the last write

		for col, cell := range want {
			if cell == have[col] {
				continue
			}
			if next != col {
				if err := r.screen.MoveCursor(row, col); err != nil {
					return r.outputFailed(err)
				}
			}
			if !utf8.ValidRune(cell.Rune) {
				return fmt.Errorf("cell (%d, %d) holds %U: %w", row, col, cell.Rune, grid.ErrEncoding)
			}
			if err := r.emit(cell); err != nil {
				return r.outputFailed(err)
			}
			have[col] = cell

			next = col + 1
			if width.RuneWidth(cell.Rune) != 1 {
				// The terminal advanced by something other than one
				// column; its cursor position is no longer implied.
				next = -1
			}
		}
	}

	if err := r.screen.Flush(); err != nil {
		return r.outputFailed(err)
	}
	return nil
}

// outputFailed marks the screen stale and returns err unchanged. A
// buffering Screen may have dropped bytes the shadow already counts, so
// the next Push repaints from a cleared screen.
func (r *Renderer) outputFailed(err error) error {
	r.stale = true
	return err
}

// emit writes one valid cell at the current terminal cursor.
func (r *Renderer) emit(cell grid.Cell) error {
	n := utf8.EncodeRune(r.enc[:], cell.Rune)

	if err := r.screen.SetStyle(cell.Style); err != nil {
		return err
	}
	_, err := r.screen.Write(r.enc[:n])
	return err
}
