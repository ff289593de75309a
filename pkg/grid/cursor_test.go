// ABOUTME: Tests for Cursor text insertion: newlines, wrapping, clipping, bad UTF-8
// ABOUTME: Checks both consumed byte counts and the resulting grid contents

package grid

import (
	"errors"
	"strings"
	"testing"
)

func rows(g *Grid) []string {
	return strings.Split(g.String(), "\n")
}

func TestCursor_WriteBasic(t *testing.T) {
	t.Parallel()

	g := MustNew(3, 6)
	style := Style{Fg: Indexed(2)}
	n, err := At(g, 0, 1).WithStyle(style).WriteString("hi\nyo")
	if err != nil {
		t.Fatalf("WriteString() unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("WriteString() = %d, want 5", n)
	}

	want := []string{" hi   ", "yo    ", "      "}
	for i, line := range rows(g) {
		if line != want[i] {
			t.Errorf("row %d = %q, want %q", i, line, want[i])
		}
	}
	if got := g.At(0, 1); got != NewCell('h', style) {
		t.Errorf("At(0, 1) = %+v, want styled 'h'", got)
	}
	if got := g.At(1, 0).Style; got != style {
		t.Errorf("style after newline = %+v, want %+v", got, style)
	}
}

func TestCursor_NonWrapClipsLongLines(t *testing.T) {
	t.Parallel()

	g := MustNew(2, 4)
	c := At(g, 0, 0)
	n, err := c.WriteString("abcdefg\nxy")
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("WriteString() = %d, want 10", n)
	}
	if got := rows(g); got[0] != "abcd" || got[1] != "xy  " {
		t.Errorf("rows = %q", got)
	}
	if r, col := c.Position(); r != 1 || col != 2 {
		t.Errorf("Position() = (%d, %d), want (1, 2)", r, col)
	}
}

func TestCursor_WrapContinuesOnNextRow(t *testing.T) {
	t.Parallel()

	g := MustNew(3, 4)
	n, err := WrappedAt(g, 0, 2).WriteString("abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Errorf("WriteString() = %d, want 6", n)
	}
	want := []string{"  ab", "cdef", "    "}
	for i, line := range rows(g) {
		if line != want[i] {
			t.Errorf("row %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestCursor_NewlineAfterFullRowSkipsARow(t *testing.T) {
	t.Parallel()

	// The wrap check runs before the newline, so a newline arriving at the
	// right edge first wraps and then advances again.
	g := MustNew(3, 3)
	n, err := WrappedAt(g, 0, 0).WriteString("abc\nd")
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("WriteString() = %d, want 5", n)
	}
	want := []string{"abc", "   ", "d  "}
	for i, line := range rows(g) {
		if line != want[i] {
			t.Errorf("row %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestCursor_WrapVersusNonWrap(t *testing.T) {
	t.Parallel()

	const text = "hello!!!!!\n!!!!"

	tests := []struct {
		name     string
		cursor   func(g *Grid) *Cursor
		consumed int
	}{
		{
			name:     "non-wrapping on last row stops after the newline",
			cursor:   func(g *Grid) *Cursor { return At(g, 3, 0) },
			consumed: 11,
		},
		{
			name:     "wrapping near bottom right takes everything that fits",
			cursor:   func(g *Grid) *Cursor { return WrappedAt(g, 1, 5) },
			consumed: len(text),
		},
		{
			name:     "wrapping bounded by remaining capacity",
			cursor:   func(g *Grid) *Cursor { return WrappedAt(g, 3, 7) },
			consumed: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := MustNew(4, 10)
			n, err := tt.cursor(g).WriteString(text)
			if err != nil {
				t.Fatalf("WriteString() unexpected error: %v", err)
			}
			if n != tt.consumed {
				t.Errorf("WriteString() = %d, want %d", n, tt.consumed)
			}
		})
	}
}

func TestCursor_WrappedGridContents(t *testing.T) {
	t.Parallel()

	g := MustNew(4, 10)
	if _, err := WrappedAt(g, 1, 5).WriteString("hello!!!!!\n!!!!"); err != nil {
		t.Fatal(err)
	}
	want := []string{"          ", "     hello", "!!!!!     ", "!!!!      "}
	for i, line := range rows(g) {
		if line != want[i] {
			t.Errorf("row %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestCursor_OutOfBoundsStart(t *testing.T) {
	t.Parallel()

	g := MustNew(2, 2)
	n, err := At(g, 2, 0).WriteString("abc")
	if err != nil || n != 0 {
		t.Errorf("WriteString() below grid = (%d, %v), want (0, nil)", n, err)
	}

	n, err = At(g, 5, 9).WriteString("abc")
	if err != nil || n != 0 {
		t.Errorf("WriteString() far outside = (%d, %v), want (0, nil)", n, err)
	}

	// Past the right edge without wrapping: bytes consumed, nothing written.
	n, err = At(g, 0, 7).WriteString("abc")
	if err != nil || n != 3 {
		t.Errorf("WriteString() right of grid = (%d, %v), want (3, nil)", n, err)
	}
	if g.String() != "  \n  " {
		t.Errorf("grid modified: %q", g.String())
	}
}

func TestCursor_MultibyteConsumedCounts(t *testing.T) {
	t.Parallel()

	g := MustNew(1, 2)
	// 'é' is 2 bytes, '世' is 3; the third scalar finds the grid full.
	n, err := WrappedAt(g, 0, 0).WriteString("é世x")
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("WriteString() = %d, want 5", n)
	}
	if got := g.At(0, 1).Rune; got != '世' {
		t.Errorf("At(0, 1) = %q, want '世'", got)
	}
}

func TestCursor_InvalidEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []byte
		consumed int
	}{
		{name: "stray continuation byte", input: []byte("ab\x80cd"), consumed: 2},
		{name: "truncated sequence", input: []byte("ok\xe4\xb8"), consumed: 2},
		{name: "invalid leading byte", input: []byte{0xff}, consumed: 0},
		{name: "encoded surrogate", input: []byte("x\xed\xa0\x80"), consumed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := MustNew(1, 8)
			n, err := At(g, 0, 0).Write(tt.input)
			if !errors.Is(err, ErrInvalidEncoding) {
				t.Fatalf("Write() error = %v, want ErrInvalidEncoding", err)
			}
			if n != tt.consumed {
				t.Errorf("Write() consumed %d, want %d", n, tt.consumed)
			}
			// Scalars before the bad byte were written.
			if got := g.String()[:tt.consumed]; got != string(tt.input[:tt.consumed]) {
				t.Errorf("grid prefix = %q, want %q", got, tt.input[:tt.consumed])
			}
		})
	}
}

func TestCursor_ReplacementCharacterIsValid(t *testing.T) {
	t.Parallel()

	g := MustNew(1, 2)
	n, err := At(g, 0, 0).WriteString("�")
	if err != nil {
		t.Fatalf("WriteString() unexpected error: %v", err)
	}
	if n != 3 || g.At(0, 0).Rune != '�' {
		t.Errorf("WriteString() = %d, cell %q", n, g.At(0, 0).Rune)
	}
}

func TestCursor_SuccessiveWritesContinue(t *testing.T) {
	t.Parallel()

	g := MustNew(2, 3)
	c := WrappedAt(g, 0, 0)
	for _, s := range []string{"ab", "cd", "e"} {
		if _, err := c.WriteString(s); err != nil {
			t.Fatal(err)
		}
	}
	if got := g.String(); got != "abc\nde " {
		t.Errorf("String() = %q, want %q", got, "abc\nde ")
	}
}
