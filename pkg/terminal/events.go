// ABOUTME: EventReader merges terminal input and resize notifications into one stream
// ABOUTME: Resizes coalesce to the latest size and are delivered ahead of pending input

package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// EventKind identifies what an Event carries.
type EventKind int

const (
	// EventInput carries raw bytes read from the terminal.
	EventInput EventKind = iota
	// EventResize carries the new terminal dimensions.
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventResize:
		return "resize"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one unit of terminal activity.
type Event struct {
	Kind   EventKind
	Data   []byte
	Width  int
	Height int
}

const readBufferSize = 4096

// EventReader reads a Terminal in the background and hands out Events.
// Run must be running for input events to arrive; resize events are
// delivered regardless.
type EventReader struct {
	term   Terminal
	input  chan []byte
	resize chan Event
}

// NewEventReader registers for resize notifications on t and returns a
// reader ready to Run.
func NewEventReader(t Terminal) *EventReader {
	r := &EventReader{
		term:   t,
		input:  make(chan []byte, 16),
		resize: make(chan Event, 1),
	}
	t.OnResize(r.pushResize)
	return r
}

// pushResize replaces any undelivered resize with the newer one.
func (r *EventReader) pushResize(width, height int) {
	ev := Event{Kind: EventResize, Width: width, Height: height}
	for {
		select {
		case r.resize <- ev:
			return
		default:
		}
		select {
		case <-r.resize:
		default:
		}
	}
}

// Run reads from the terminal until ctx is done or the terminal reports
// io.EOF, which ends Run with a nil error. Any other read error is
// returned. Next reports io.EOF once Run has returned and its input is
// drained.
func (r *EventReader) Run(ctx context.Context) error {
	defer close(r.input)

	buf := make([]byte, readBufferSize)
	for {
		n, err := r.term.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			select {
			case r.input <- chunk:
			case <-ctx.Done():
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading terminal input: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Next blocks until an event is available or ctx is done.
func (r *EventReader) Next(ctx context.Context) (Event, error) {
	select {
	case ev := <-r.resize:
		return ev, nil
	default:
	}

	select {
	case ev := <-r.resize:
		return ev, nil
	case data, ok := <-r.input:
		if !ok {
			return Event{}, io.EOF
		}
		return Event{Kind: EventInput, Data: data}, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}
