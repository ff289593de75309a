// ABOUTME: Style blocks and color values as written in config files
// ABOUTME: Colors are #rrggbb hex (go-colorful), palette indices 0-255, or "default"

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/gridterm/pkg/grid"
	"github.com/mauromedda/gridterm/pkg/terminal"
)

// ErrInvalidColor reports a color value that is neither hex nor an index.
var ErrInvalidColor = errors.New("invalid color")

// ColorValue is a color as written in YAML. Both `fg: "#ff8800"` and
// `fg: 208` are accepted.
type ColorValue string

// UnmarshalYAML takes any scalar verbatim so numbers need no quoting.
func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", node.Line)
	}
	*c = ColorValue(node.Value)
	return nil
}

// Color parses c. The empty string and "default" are the terminal default.
func (c ColorValue) Color() (grid.Color, error) {
	s := strings.TrimSpace(string(c))
	switch {
	case s == "" || strings.EqualFold(s, "default"):
		return grid.ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		col, err := colorful.Hex(s)
		if err != nil {
			return grid.ColorDefault, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
		}
		r, g, b := col.RGB255()
		return grid.RGB(r, g, b), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return grid.ColorDefault, fmt.Errorf("%w %q: want #rrggbb or 0-255", ErrInvalidColor, s)
	}
	return grid.Indexed(uint8(n)), nil
}

// StyleBlock is a style block such as:
//
//	status_style:
//	  fg: "#1e1e2e"
//	  bg: 183
//	  bold: true
type StyleBlock struct {
	Fg        ColorValue `yaml:"fg,omitempty"`
	Bg        ColorValue `yaml:"bg,omitempty"`
	Bold      bool       `yaml:"bold,omitempty"`
	Italic    bool       `yaml:"italic,omitempty"`
	Underline bool       `yaml:"underline,omitempty"`
	Reverse   bool       `yaml:"reverse,omitempty"`
}

// Style converts the block into a grid.Style.
func (s StyleBlock) Style() (grid.Style, error) {
	fg, err := s.Fg.Color()
	if err != nil {
		return grid.Style{}, fmt.Errorf("fg: %w", err)
	}
	bg, err := s.Bg.Color()
	if err != nil {
		return grid.Style{}, fmt.Errorf("bg: %w", err)
	}

	style := grid.Style{Fg: fg, Bg: bg}
	for _, a := range []struct {
		on   bool
		attr grid.Attr
	}{
		{s.Bold, grid.AttrBold},
		{s.Italic, grid.AttrItalic},
		{s.Underline, grid.AttrUnderline},
		{s.Reverse, grid.AttrReverse},
	} {
		if a.on {
			style = style.With(a.attr)
		}
	}
	return style, nil
}

// merge overlays top's colors and switched-on attributes onto s.
func (s StyleBlock) merge(top StyleBlock) StyleBlock {
	if top.Fg != "" {
		s.Fg = top.Fg
	}
	if top.Bg != "" {
		s.Bg = top.Bg
	}
	s.Bold = s.Bold || top.Bold
	s.Italic = s.Italic || top.Italic
	s.Underline = s.Underline || top.Underline
	s.Reverse = s.Reverse || top.Reverse
	return s
}

// ParseColorMode maps "auto", "256" or "truecolor" to a terminal color
// mode. "auto" (or empty) detects from the environment.
func ParseColorMode(s string) (terminal.ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return terminal.DetectColorMode(), nil
	case "256":
		return terminal.ColorMode256, nil
	case "truecolor", "24bit":
		return terminal.ColorModeTrueColor, nil
	}
	return terminal.ColorMode256, fmt.Errorf("unknown color mode %q", s)
}
