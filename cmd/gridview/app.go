// ABOUTME: gridview's event loop: redraws on resize and navigation keys until quit
// ABOUTME: Every redraw lays out a full frame and lets the Renderer diff it

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/gridterm/internal/log"
	"github.com/mauromedda/gridterm/pkg/render"
	"github.com/mauromedda/gridterm/pkg/terminal"
)

type app struct {
	renderer *render.Renderer
	events   *terminal.EventReader
	view     *view

	rows int
}

// closingTerminal is a terminal whose Close unblocks a pending Read.
type closingTerminal interface {
	terminal.Terminal
	io.Closer
}

// serve runs the event reader and the loop until the loop ends or one of
// them fails. Ending the loop stops the reader whether it is blocked in a
// read or on a full input queue.
func (a *app) serve(ctx context.Context, term closingTerminal) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		defer terminal.RecoverGoroutine(term)
		return a.events.Run(ctx)
	})
	g.Go(func() error {
		defer cancel()
		defer term.Close()
		defer terminal.RecoverGoroutine(term)
		return a.loop(ctx)
	})
	return g.Wait()
}

// draw lays out the view for the current terminal size and pushes it.
func (a *app) draw() error {
	rows, cols, err := a.renderer.Size()
	if err != nil {
		return fmt.Errorf("querying terminal size: %w", err)
	}
	frame, err := a.view.layout(rows, cols)
	if err != nil {
		return err
	}
	if err := a.renderer.Push(frame); err != nil {
		return fmt.Errorf("pushing frame: %w", err)
	}
	a.rows = rows
	return nil
}

// loop draws once and then after every event. It returns nil on quit,
// end of input or cancellation.
func (a *app) loop(ctx context.Context) error {
	if err := a.draw(); err != nil {
		return err
	}

	for {
		ev, err := a.events.Next(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}

		switch ev.Kind {
		case terminal.EventResize:
			log.Debug("gridview: resized to %dx%d", ev.Width, ev.Height)
			// Terminals reflow the old content on resize; start clean.
			a.renderer.Invalidate()
		case terminal.EventInput:
			for _, act := range decodeKeys(ev.Data) {
				switch act {
				case actionQuit:
					return nil
				case actionRedraw:
					a.renderer.Invalidate()
				default:
					a.view.apply(act, a.rows-1)
				}
			}
		}

		if err := a.draw(); err != nil {
			return err
		}
	}
}
