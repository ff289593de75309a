// ABOUTME: Maps raw terminal input bytes to viewer actions
// ABOUTME: Understands single keys, control characters and CSI cursor sequences

package main

import "bytes"

type action int

const (
	actionNone action = iota
	actionQuit
	actionLineDown
	actionLineUp
	actionPageDown
	actionPageUp
	actionTop
	actionBottom
	actionRedraw
)

var sequences = []struct {
	seq []byte
	act action
}{
	{[]byte("\x1b[A"), actionLineUp},
	{[]byte("\x1b[B"), actionLineDown},
	{[]byte("\x1b[5~"), actionPageUp},
	{[]byte("\x1b[6~"), actionPageDown},
	{[]byte("\x1b[H"), actionTop},
	{[]byte("\x1b[F"), actionBottom},
}

var singleKeys = map[byte]action{
	'q':  actionQuit,
	0x03: actionQuit, // Ctrl-C
	0x04: actionQuit, // Ctrl-D
	'j':  actionLineDown,
	'\r': actionLineDown,
	'k':  actionLineUp,
	' ':  actionPageDown,
	'b':  actionPageUp,
	'g':  actionTop,
	'G':  actionBottom,
	0x0c: actionRedraw, // Ctrl-L
}

// decodeKeys returns the actions in one chunk of input, in order.
// Unknown bytes and escape sequences are skipped.
func decodeKeys(data []byte) []action {
	var acts []action
	for len(data) > 0 {
		if data[0] == 0x1b {
			matched := false
			for _, s := range sequences {
				if bytes.HasPrefix(data, s.seq) {
					acts = append(acts, s.act)
					data = data[len(s.seq):]
					matched = true
					break
				}
			}
			if matched {
				continue
			}
			data = skipEscape(data)
			continue
		}
		if act, ok := singleKeys[data[0]]; ok {
			acts = append(acts, act)
		}
		data = data[1:]
	}
	return acts
}

// skipEscape drops one unrecognized escape sequence, or a lone ESC.
func skipEscape(data []byte) []byte {
	if len(data) < 2 || data[1] != '[' {
		return data[1:]
	}
	// CSI: parameters and intermediates up to a final byte in 0x40-0x7E.
	for i := 2; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			return data[i+1:]
		}
	}
	return nil
}
