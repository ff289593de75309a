// ABOUTME: Lays out gridview's frame: a text or image body above a one-line status bar
// ABOUTME: Layout depends only on content, scroll position and size so it runs without a TTY

package main

import (
	"fmt"
	goimage "image"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/gridterm/pkg/grid"
	"github.com/mauromedda/gridterm/pkg/image"
)

const tabWidth = 4

type view struct {
	name string

	lines []string
	img   goimage.Image

	wrap bool
	top  int

	textStyle   grid.Style
	statusStyle grid.Style
}

func newTextView(name, text string) *view {
	return &view{name: displayName(name), lines: strings.Split(sanitize(text), "\n")}
}

func newImageView(name string, img goimage.Image) *view {
	return &view{name: displayName(name), img: img}
}

func displayName(name string) string {
	return strings.ReplaceAll(sanitize(name), "\n", "�")
}

// sanitize prepares file text for cell-by-cell display: NFC so combining
// sequences compose where possible, valid UTF-8, tabs expanded, and other
// control characters made visible.
func sanitize(text string) string {
	text = strings.ToValidUTF8(text, "�")
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	col := 0
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteRune(r)
			col = 0
		case r == '\r':
			// CRLF line endings.
		case r == '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case unicode.IsControl(r):
			b.WriteRune('�')
			col++
		default:
			b.WriteRune(r)
			col++
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// layout renders the view into a fresh rows x cols frame. The last row is
// the status bar.
func (v *view) layout(rows, cols int) (*grid.Grid, error) {
	frame, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("allocating frame: %w", err)
	}
	if rows == 0 || cols == 0 {
		return frame, nil
	}

	if bodyRows := rows - 1; bodyRows > 0 {
		if v.img != nil {
			err = v.drawImage(frame, bodyRows, cols)
		} else {
			err = v.drawText(frame, bodyRows, cols)
		}
		if err != nil {
			return nil, err
		}
	}
	v.drawStatus(frame, rows-1, cols)
	return frame, nil
}

func (v *view) drawText(frame *grid.Grid, rows, cols int) error {
	body, err := grid.New(rows, cols)
	if err != nil {
		return fmt.Errorf("allocating text body: %w", err)
	}
	body.Fill(grid.NewCell(' ', v.textStyle))

	cur := grid.At(body, 0, 0)
	if v.wrap {
		cur = grid.WrappedAt(body, 0, 0)
	}
	cur.WithStyle(v.textStyle)

	for _, line := range v.lines[v.top:] {
		line += "\n"
		n, err := cur.WriteString(line)
		if err != nil {
			return fmt.Errorf("drawing line: %w", err)
		}
		if n < len(line) {
			break
		}
	}

	frame.Blit(body, 0, 0)
	return nil
}

func (v *view) drawImage(frame *grid.Grid, rows, cols int) error {
	pic, err := image.ToGrid(v.img, cols, rows)
	if err != nil {
		return fmt.Errorf("converting image: %w", err)
	}
	h, w := pic.Size()
	frame.Blit(pic, (rows-h)/2, (cols-w)/2)
	return nil
}

func (v *view) drawStatus(frame *grid.Grid, row, cols int) {
	for i := range frame.Row(row) {
		frame.Set(row, i, grid.NewCell(' ', v.statusStyle))
	}

	// Cells hold one rune each, so the bar is laid out in runes.
	left := " " + v.name
	right := v.position() + "  q quit "
	gap := cols - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	line := left + " " + right
	if gap >= 1 {
		line = left + strings.Repeat(" ", gap) + right
	}

	// The line is sanitized, so the cursor cannot fail.
	_, _ = grid.At(frame, row, 0).WithStyle(v.statusStyle).WriteString(line)
}

func (v *view) position() string {
	if v.img != nil {
		b := v.img.Bounds()
		return fmt.Sprintf("%dx%d px", b.Dx(), b.Dy())
	}
	return fmt.Sprintf("line %d/%d", v.top+1, len(v.lines))
}

// scroll moves the first shown line by delta, clamped to the content.
func (v *view) scroll(delta int) {
	v.top = min(max(v.top+delta, 0), max(len(v.lines)-1, 0))
}

// apply performs a navigation action. page is the body height.
func (v *view) apply(act action, page int) {
	page = max(page, 1)
	switch act {
	case actionLineDown:
		v.scroll(1)
	case actionLineUp:
		v.scroll(-1)
	case actionPageDown:
		v.scroll(page)
	case actionPageUp:
		v.scroll(-page)
	case actionTop:
		v.top = 0
	case actionBottom:
		v.scroll(len(v.lines))
	}
}
