// ABOUTME: Tests for the CUP and SGR encoders and the RGB to 256-color mapping
// ABOUTME: Compares exact escape bytes for every color form and attribute bit

package terminal

import (
	"testing"

	"github.com/mauromedda/gridterm/pkg/grid"
)

func TestAppendCursorPos(t *testing.T) {
	t.Parallel()

	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "\x1b[1;1H"},
		{4, 9, "\x1b[5;10H"},
		{99, 199, "\x1b[100;200H"},
	}
	for _, tt := range tests {
		if got := string(appendCursorPos(nil, tt.row, tt.col)); got != tt.want {
			t.Errorf("appendCursorPos(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestAppendSGR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style grid.Style
		mode  ColorMode
		want  string
	}{
		{
			name: "zero style is a bare reset",
			want: "\x1b[0m",
		},
		{
			name:  "attributes in parameter order",
			style: grid.Style{Attrs: grid.AttrStrikethrough | grid.AttrBold | grid.AttrReverse},
			want:  "\x1b[0;1;7;9m",
		},
		{
			name:  "every attribute",
			style: grid.Style{Attrs: grid.AttrBold | grid.AttrDim | grid.AttrItalic | grid.AttrUnderline | grid.AttrBlink | grid.AttrReverse | grid.AttrStrikethrough},
			want:  "\x1b[0;1;2;3;4;5;7;9m",
		},
		{
			name:  "basic and bright palette",
			style: grid.Style{Fg: grid.Indexed(1), Bg: grid.Indexed(12), Attrs: grid.AttrBold | grid.AttrUnderline},
			want:  "\x1b[0;1;4;31;104m",
		},
		{
			name:  "extended palette",
			style: grid.Style{Fg: grid.Indexed(200), Bg: grid.Indexed(16)},
			want:  "\x1b[0;38;5;200;48;5;16m",
		},
		{
			name:  "truecolor rgb",
			style: grid.Style{Bg: grid.RGB(10, 20, 30)},
			mode:  ColorModeTrueColor,
			want:  "\x1b[0;48;2;10;20;30m",
		},
		{
			name:  "rgb falls back to the palette",
			style: grid.Style{Fg: grid.RGB(255, 0, 0), Bg: grid.RGB(128, 128, 128)},
			mode:  ColorMode256,
			want:  "\x1b[0;38;5;196;48;5;244m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := string(appendSGR(nil, tt.style, tt.mode)); got != tt.want {
				t.Errorf("appendSGR() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBTo256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 16},
		{"white", 255, 255, 255, 231},
		{"mid gray uses the ramp", 128, 128, 128, 244},
		{"pure red", 255, 0, 0, 196},
		{"pure green", 0, 255, 0, 46},
		{"pure blue", 0, 0, 255, 21},
		{"cube level exact", 95, 135, 175, 67},
	}
	for _, tt := range tests {
		if got := rgbTo256(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("%s: rgbTo256(%d, %d, %d) = %d, want %d", tt.name, tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestDetectColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{name: "empty environment", env: map[string]string{}, want: ColorMode256},
		{name: "COLORTERM truecolor", env: map[string]string{"COLORTERM": "truecolor"}, want: ColorModeTrueColor},
		{name: "COLORTERM 24bit", env: map[string]string{"COLORTERM": "24bit"}, want: ColorModeTrueColor},
		{name: "kitty", env: map[string]string{"KITTY_WINDOW_ID": "1"}, want: ColorModeTrueColor},
		{name: "TERM direct", env: map[string]string{"TERM": "xterm-direct"}, want: ColorModeTrueColor},
		{name: "plain xterm", env: map[string]string{"TERM": "xterm-256color"}, want: ColorMode256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := detectColorMode(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("detectColorMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
