// ABOUTME: Defines the Terminal interface for raw mode, size queries, input and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import "errors"

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, byte I/O, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	Read(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}

// Error classes reported by Output. Underlying causes stay reachable
// through errors.Is and errors.As.
var (
	ErrOutput        = errors.New("terminal: output failed")
	ErrTerminalQuery = errors.New("terminal: size query failed")
	ErrTerminalSetup = errors.New("terminal: setup failed")
)
