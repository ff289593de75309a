// ABOUTME: Grid is a fixed-size row-major array of Cells with resize and blit
// ABOUTME: Resize allocates and copies before swapping so failures leave the grid intact

package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxCells bounds the storage of a single Grid (4096x4096).
const MaxCells = 1 << 24

// Grid owns a height*width block of cells; cells[row*width+col] is (row, col).
type Grid struct {
	height int
	width  int
	cells  []Cell
}

// New allocates a height x width grid with every cell set to DefaultCell.
func New(height, width int) (*Grid, error) {
	cells, err := allocCells(height, width)
	if err != nil {
		return nil, err
	}
	return &Grid{height: height, width: width, cells: cells}, nil
}

// MustNew is New for sizes known to be valid; it panics on error.
func MustNew(height, width int) *Grid {
	g, err := New(height, width)
	if err != nil {
		panic(err)
	}
	return g
}

// allocCells returns default-filled storage for a height x width grid.
func allocCells(height, width int) ([]Cell, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("allocating %dx%d: negative extent: %w", height, width, ErrAllocation)
	}
	if width != 0 && height > MaxCells/width {
		return nil, fmt.Errorf("allocating %dx%d: exceeds %d cells: %w", height, width, MaxCells, ErrAllocation)
	}
	cells := make([]Cell, height*width)
	for i := range cells {
		cells[i] = DefaultCell
	}
	return cells, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Size returns (height, width).
func (g *Grid) Size() (height, width int) { return g.height, g.width }

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: cell (%d, %d) out of range %dx%d", row, col, g.height, g.width))
	}
	return row*g.width + col
}

// Row returns the width cells of row r. The slice aliases the grid's
// storage and its capacity is clipped to the row. Panics if r is out of range.
func (g *Grid) Row(r int) []Cell {
	if r < 0 || r >= g.height {
		panic(fmt.Sprintf("grid: row %d out of range [0, %d)", r, g.height))
	}
	start := r * g.width
	end := start + g.width
	return g.cells[start:end:end]
}

// At returns a copy of the cell at (row, col).
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Ref returns a pointer to the cell at (row, col) for in-place edits.
// The pointer is invalidated by Resize.
func (g *Grid) Ref(row, col int) *Cell {
	return &g.cells[g.index(row, col)]
}

// Set stores c at (row, col).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Clear resets every cell to DefaultCell.
func (g *Grid) Clear() {
	g.Fill(DefaultCell)
}

// Resize reshapes the grid to height x width, keeping the overlapping
// top-left rectangle in place. Equal dimensions are a no-op. On error the
// grid is unchanged.
func (g *Grid) Resize(height, width int) error {
	if height == g.height && width == g.width {
		return nil
	}

	// allocCells hands back a fully cleared store, which is what growth
	// along either axis needs: padding cells must never show stale data.
	cells, err := allocCells(height, width)
	if err != nil {
		return fmt.Errorf("resizing grid: %w", err)
	}

	rows := min(g.height, height)
	cols := min(g.width, width)
	for r := 0; r < rows; r++ {
		copy(cells[r*width:r*width+cols], g.cells[r*g.width:r*g.width+cols])
	}

	g.cells = cells
	g.height = height
	g.width = width
	return nil
}

// Blit copies src onto g so that src's (0, 0) lands at (rowOff, colOff).
// Offsets may be negative; cells falling outside g are dropped.
func (g *Grid) Blit(src *Grid, rowOff, colOff int) {
	if src == g {
		src = g.Clone()
	}

	// Clip in signed space before any index is formed.
	rowStart := max(0, -rowOff)
	rowEnd := min(src.height, g.height-rowOff)
	colStart := max(0, -colOff)
	colEnd := min(src.width, g.width-colOff)
	if rowStart >= rowEnd || colStart >= colEnd {
		return
	}

	for r := rowStart; r < rowEnd; r++ {
		dst := (r+rowOff)*g.width + colOff
		from := r * src.width
		copy(g.cells[dst+colStart:dst+colEnd], src.cells[from+colStart:from+colEnd])
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Equal reports whether g and other have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the runes of g, one line per row, ignoring style.
// Runes with no UTF-8 form print as U+FFFD.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range g.Row(r) {
			if !utf8.ValidRune(c.Rune) {
				b.WriteRune(utf8.RuneError)
				continue
			}
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}
