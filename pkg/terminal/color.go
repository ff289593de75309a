// ABOUTME: Color capability detection and RGB to xterm-256 palette mapping
// ABOUTME: Detection reads COLORTERM, terminal-specific variables and TERM

package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability.
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the config spelling of m.
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// DetectColorMode determines terminal color capability from the environment.
func DetectColorMode() ColorMode {
	return detectColorMode(os.Getenv)
}

func detectColorMode(getenv func(string) string) ColorMode {
	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, key := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if getenv(key) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// cubeLevels are the channel intensities of the 6x6x6 cube (indices 16-231).
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// cubeIndex returns the nearest cube level index for a channel value.
func cubeIndex(v int) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}

// rgbTo256 finds the nearest xterm-256 palette entry for an RGB value,
// choosing between the color cube and the 24-step grayscale ramp.
func rgbTo256(r, g, b uint8) uint8 {
	ri, gi, bi := cubeIndex(int(r)), cubeIndex(int(g)), cubeIndex(int(b))
	cube := 16 + 36*ri + 6*gi + bi
	cubeDist := sq(int(r)-cubeLevels[ri]) + sq(int(g)-cubeLevels[gi]) + sq(int(b)-cubeLevels[bi])

	avg := (int(r) + int(g) + int(b)) / 3
	grayIdx := 23
	if avg < 238 {
		grayIdx = max(0, (avg-3)/10)
	}
	level := 8 + 10*grayIdx
	grayDist := sq(int(r)-level) + sq(int(g)-level) + sq(int(b)-level)

	if grayDist < cubeDist {
		return uint8(232 + grayIdx)
	}
	return uint8(cube)
}

func sq(x int) int { return x * x }
