// ABOUTME: Tests for EventReader: input delivery, resize coalescing, shutdown on EOF
// ABOUTME: Drives a VirtualTerminal with Feed, SetSize and Close

package terminal

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

func TestEventReader_DeliversInput(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	r := NewEventReader(vt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	vt.Feed([]byte("q"))
	ev, err := r.Next(ctx)
	if err != nil {
		t.Fatalf("Next() unexpected error: %v", err)
	}
	if ev.Kind != EventInput || string(ev.Data) != "q" {
		t.Errorf("Next() = %+v, want input \"q\"", ev)
	}

	_ = vt.Close()
	if err := <-done; err != nil {
		t.Errorf("Run() = %v, want nil after EOF", err)
	}
	if _, err := r.Next(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after Run ended = %v, want io.EOF", err)
	}
}

func TestEventReader_ResizeCoalesces(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	r := NewEventReader(vt)

	vt.SetSize(100, 30)
	vt.SetSize(120, 40)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ev, err := r.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != EventResize || ev.Width != 120 || ev.Height != 40 {
		t.Errorf("Next() = %+v, want resize 120x40", ev)
	}

	// Only the latest size was kept.
	short, cancelShort := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelShort()
	if _, err := r.Next(short); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("second Next() = %v, want deadline exceeded", err)
	}
}

func TestEventReader_ResizeBeforeInput(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	r := NewEventReader(vt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.input <- []byte("a")
	vt.SetSize(90, 20)

	ev, err := r.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != EventResize {
		t.Errorf("first event = %v, want resize", ev.Kind)
	}
	ev, err = r.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Kind != EventInput || string(ev.Data) != "a" {
		t.Errorf("second event = %+v, want input \"a\"", ev)
	}
}

func TestEventReader_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	vt := NewVirtualTerminal(80, 24)
	r := NewEventReader(vt)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	// Run is blocked handing over this chunk when the context ends.
	for range cap(r.input) + 1 {
		vt.Feed([]byte("x"))
	}
	cancel()
	_ = vt.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestEventKind_String(t *testing.T) {
	t.Parallel()

	if EventInput.String() != "input" || EventResize.String() != "resize" {
		t.Errorf("String() = %q, %q", EventInput, EventResize)
	}
	if got := EventKind(9).String(); got != "EventKind(9)" {
		t.Errorf("String() = %q", got)
	}
}
