// ABOUTME: Windows fallbacks for ProcessTerminal resize handling and reads.
// ABOUTME: Windows does not deliver SIGWINCH; reads go straight to the console handle.

//go:build windows

package terminal

import "io"

// startResizeListener is a no-op on Windows.
// Console resize events arrive through ReadConsoleInput, which this
// package does not decode.
func (t *ProcessTerminal) startResizeListener() {}

func (t *ProcessTerminal) read(p []byte) (int, error) {
	select {
	case <-t.done:
		return 0, io.EOF
	default:
	}
	return t.in.Read(p)
}
