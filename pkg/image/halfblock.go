// ABOUTME: Converts raster images into cell grids using the lower half block (▄)
// ABOUTME: Each cell shows two pixels: background is the top one, foreground the bottom one

package image

import (
	goimage "image"

	"golang.org/x/image/draw"

	"github.com/mauromedda/gridterm/pkg/grid"
)

// HalfBlock is the glyph every image cell uses.
const HalfBlock = '▄'

// ToGrid scales img to fit within maxCols x maxRows cells, preserving its
// aspect ratio, and returns it as a grid of half-block cells. One cell
// covers one pixel column and two pixel rows. An empty image or a
// non-positive bound yields an empty grid.
func ToGrid(img goimage.Image, maxCols, maxRows int) (*grid.Grid, error) {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || maxCols <= 0 || maxRows <= 0 {
		return grid.New(0, 0)
	}

	w, h := fitDimensions(srcW, srcH, maxCols, maxRows*2)
	scaled := img
	if w != srcW || h != srcH {
		dst := goimage.NewRGBA(goimage.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		scaled = dst
	}
	origin := scaled.Bounds().Min

	g, err := grid.New((h+1)/2, w)
	if err != nil {
		return nil, err
	}
	for row := range g.Height() {
		cells := g.Row(row)
		y := origin.Y + row*2
		for col := range cells {
			x := origin.X + col
			style := grid.Style{Bg: rgbAt(scaled, x, y)}
			// Past an odd last row the bottom half is black.
			style.Fg = grid.RGB(0, 0, 0)
			if row*2+1 < h {
				style.Fg = rgbAt(scaled, x, y+1)
			}
			cells[col] = grid.NewCell(HalfBlock, style)
		}
	}
	return g, nil
}

// fitDimensions scales (w, h) down to fit within (maxW, maxH) preserving
// aspect ratio. Neither result drops below 1.
func fitDimensions(w, h, maxW, maxH int) (int, int) {
	if w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if h > maxH {
		w = w * maxH / h
		h = maxH
	}
	return max(w, 1), max(h, 1)
}

// rgbAt returns the pixel at (x, y) as an 8-bit RGB color.
func rgbAt(img goimage.Image, x, y int) grid.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return grid.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
