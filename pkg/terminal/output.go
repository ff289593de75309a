// ABOUTME: Output encodes Renderer commands as ANSI sequences over a buffered Terminal
// ABOUTME: Coalesces repeated styles and owns the raw-mode and alternate-screen lifecycle

package terminal

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/mauromedda/gridterm/pkg/grid"
)

const outputBufferSize = 64 * 1024

// Output is the render.Screen implementation for ANSI terminals.
// Sequences are buffered until Flush. Not safe for concurrent use.
type Output struct {
	term Terminal
	w    *bufio.Writer
	mode ColorMode

	scratch []byte

	last      grid.Style
	lastValid bool
	active    bool
}

// NewOutput returns an Output writing to t using mode for RGB colors.
func NewOutput(t Terminal, mode ColorMode) *Output {
	return &Output{
		term:    t,
		w:       bufio.NewWriterSize(t, outputBufferSize),
		mode:    mode,
		scratch: make([]byte, 0, 64),
	}
}

// ColorMode returns the color capability Output encodes for.
func (o *Output) ColorMode() ColorMode {
	return o.mode
}

// Setup enters raw mode, switches to the alternate screen, hides the
// cursor, disables autowrap and clears the display.
func (o *Output) Setup() error {
	if o.active {
		return nil
	}
	if err := o.term.EnterRawMode(); err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalSetup, err)
	}

	_, _ = o.w.WriteString(altScreenOn + cursorHide + autoWrapOff + sgrReset + clearScreen)
	if err := o.w.Flush(); err != nil {
		_ = o.term.ExitRawMode()
		return fmt.Errorf("%w: %w", ErrTerminalSetup, err)
	}

	o.lastValid = false
	o.active = true
	return nil
}

// Teardown undoes Setup. It is a no-op when Setup has not run.
func (o *Output) Teardown() error {
	if !o.active {
		return nil
	}
	o.active = false
	o.lastValid = false

	_, _ = o.w.Write(resetSequence)
	flushErr := o.w.Flush()
	if flushErr != nil {
		flushErr = fmt.Errorf("%w: %w", ErrOutput, flushErr)
	}
	return errors.Join(flushErr, o.term.ExitRawMode())
}

// Size returns (rows, cols) of the terminal.
func (o *Output) Size() (rows, cols int, err error) {
	w, h, err := o.term.Size()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrTerminalQuery, err)
	}
	return h, w, nil
}

// MoveCursor positions the cursor at the 0-based (row, col).
func (o *Output) MoveCursor(row, col int) error {
	o.scratch = appendCursorPos(o.scratch[:0], row, col)
	return o.write(o.scratch)
}

// SetStyle selects style for subsequent text. Repeating the current
// style emits nothing.
func (o *Output) SetStyle(style grid.Style) error {
	if o.lastValid && style == o.last {
		return nil
	}
	o.scratch = appendSGR(o.scratch[:0], style, o.mode)
	if err := o.write(o.scratch); err != nil {
		return err
	}
	o.last = style
	o.lastValid = true
	return nil
}

// Write buffers text for output.
func (o *Output) Write(p []byte) (int, error) {
	n, err := o.w.Write(p)
	if err != nil {
		return n, o.fail(err)
	}
	return n, nil
}

// Flush sends buffered output to the terminal.
func (o *Output) Flush() error {
	if err := o.w.Flush(); err != nil {
		return o.fail(err)
	}
	return nil
}

// ClearScreen resets attributes, erases the display and homes the cursor.
func (o *Output) ClearScreen() error {
	o.lastValid = false
	return o.write([]byte(sgrReset + clearScreen))
}

// SetCursorVisible shows or hides the hardware cursor.
func (o *Output) SetCursorVisible(visible bool) error {
	if visible {
		return o.write([]byte(cursorShow))
	}
	return o.write([]byte(cursorHide))
}

func (o *Output) write(p []byte) error {
	if _, err := o.w.Write(p); err != nil {
		return o.fail(err)
	}
	return nil
}

// fail discards buffered bytes after an I/O error so the writer is usable
// again; bufio errors are otherwise sticky.
func (o *Output) fail(err error) error {
	o.w.Reset(o.term)
	o.lastValid = false
	return fmt.Errorf("%w: %w", ErrOutput, err)
}
