// ABOUTME: Tests for panic recovery and the emergency reset sequence
// ABOUTME: Verifies goroutine panics restore the terminal without exiting the process

package terminal

import (
	"bytes"
	"testing"
)

func TestEmergencyReset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	EmergencyReset(&buf)

	want := "\x1b[0m\x1b[?7h\x1b[?25h\x1b[?1049l"
	if got := buf.String(); got != want {
		t.Errorf("EmergencyReset() wrote %q, want %q", got, want)
	}
}

func TestRecoverGoroutine_CatchesPanic(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	if err := vt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer RecoverGoroutine(vt)
		panic("render loop exploded")
	}()
	<-done

	if vt.IsRawMode() {
		t.Error("expected ExitRawMode to be called on goroutine panic")
	}
	if got := vt.Output(); got != string(resetSequence) {
		t.Errorf("output = %q, want the reset sequence", got)
	}
}

func TestRecoverGoroutine_NoPanic(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer RecoverGoroutine(vt)
	}()
	<-done

	if vt.ExitCount() != 0 || vt.Output() != "" {
		t.Error("terminal touched although no panic occurred")
	}
}
