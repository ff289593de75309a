// ABOUTME: Unix-specific SIGWINCH handling and cancellable polling reads for ProcessTerminal.
// ABOUTME: Reads poll the input fd so Close can stop a blocked reader.

//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// pollInterval bounds how long a Read can miss a Close, in milliseconds.
const pollInterval = 100

// startResizeListener sets up a SIGWINCH handler that calls the
// resize callback with the new terminal dimensions until Close.
func (t *ProcessTerminal) startResizeListener() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-t.done:
				return
			case <-sigCh:
				t.notifyResize()
			}
		}
	}()
}

func (t *ProcessTerminal) read(p []byte) (int, error) {
	fd := int(t.in.Fd())
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for {
		select {
		case <-t.done:
			return 0, io.EOF
		default:
		}

		n, err := unix.Poll(fds, pollInterval)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return 0, fmt.Errorf("polling %s: %w", t.in.Name(), err)
		}
		if n == 0 {
			continue
		}

		rn, err := unix.Read(fd, p)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return 0, fmt.Errorf("reading %s: %w", t.in.Name(), err)
		}
		if rn == 0 {
			return 0, io.EOF
		}
		return rn, nil
	}
}
