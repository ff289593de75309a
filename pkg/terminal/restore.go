// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// resetSequence undoes everything Output.Setup writes.
var resetSequence = []byte(sgrReset + autoWrapOn + cursorShow + altScreenExit)

// EmergencyReset writes the sequences that leave the alternate screen,
// re-enable autowrap and show the cursor. Errors are ignored.
func EmergencyReset(w io.Writer) {
	_, _ = w.Write(resetSequence)
}

// RestoreOnPanic should be deferred at the top of main (or any
// goroutine that owns the terminal). On panic it resets the screen,
// exits raw mode via the provided Terminal, prints the panic value
// and stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	EmergencyReset(t)
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	EmergencyReset(t)
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
