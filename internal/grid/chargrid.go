// Package grid provides rectangular grids used by most puzzles: a byte grid
// parsed straight from the input and a generic dense grid.
package grid

import (
	"advent/internal/geo"
	"strings"
)

// Outside is returned by CharGrid.At for positions outside the grid.
const Outside byte = ' '

// CharGrid is a rectangular grid of bytes indexed as [y][x].
type CharGrid struct {
	cells [][]byte
}

// Parse builds a grid from text, one row per line. Trailing carriage returns
// and empty lines are ignored.
func Parse(input string) *CharGrid {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	cells := make([][]byte, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		cells = append(cells, []byte(line))
	}

	return &CharGrid{cells: cells}
}

// New returns a rows x cols grid filled with '.'.
func New(rows, cols int) *CharGrid {
	cells := make([][]byte, rows)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(".", cols))
	}

	return &CharGrid{cells: cells}
}

// Rows returns the number of rows.
func (g *CharGrid) Rows() int { return len(g.cells) }

// Cols returns the number of columns of the first row.
func (g *CharGrid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}

	return len(g.cells[0])
}

// InBounds reports whether (x, y) lies within the grid.
func (g *CharGrid) InBounds(x, y int) bool {
	return y >= 0 && y < len(g.cells) && x >= 0 && x < len(g.cells[y])
}

// Contains reports whether p lies within the grid.
func (g *CharGrid) Contains(p geo.Point) bool { return g.InBounds(p.X, p.Y) }

// At returns the byte at (x, y), or Outside.
func (g *CharGrid) At(x, y int) byte {
	if !g.InBounds(x, y) {
		return Outside
	}

	return g.cells[y][x]
}

// AtPoint returns the byte at p, or Outside.
func (g *CharGrid) AtPoint(p geo.Point) byte { return g.At(p.X, p.Y) }

// Set stores c at (x, y). Positions outside the grid are ignored.
func (g *CharGrid) Set(x, y int, c byte) {
	if g.InBounds(x, y) {
		g.cells[y][x] = c
	}
}

// SetPoint stores c at p.
func (g *CharGrid) SetPoint(p geo.Point, c byte) { g.Set(p.X, p.Y, c) }

// Row returns row y; the slice aliases the grid.
func (g *CharGrid) Row(y int) []byte { return g.cells[y] }

// Find returns every position holding c, row by row.
func (g *CharGrid) Find(c byte) []geo.Point {
	var matches []geo.Point
	for y, row := range g.cells {
		for x, v := range row {
			if v == c {
				matches = append(matches, geo.Pt(x, y))
			}
		}
	}

	return matches
}

// FindFirst returns the first position holding c.
func (g *CharGrid) FindFirst(c byte) (geo.Point, bool) {
	for y, row := range g.cells {
		for x, v := range row {
			if v == c {
				return geo.Pt(x, y), true
			}
		}
	}

	return geo.Point{}, false
}

// Count returns how many cells hold c.
func (g *CharGrid) Count(c byte) int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}

	return n
}

// Transpose returns a new grid with rows and columns swapped.
func (g *CharGrid) Transpose() *CharGrid {
	rows, cols := g.Rows(), g.Cols()
	out := make([][]byte, cols)
	for x := range out {
		out[x] = make([]byte, rows)
		for y := 0; y < rows; y++ {
			out[x][y] = g.cells[y][x]
		}
	}

	return &CharGrid{cells: out}
}

// Clone returns a deep copy.
func (g *CharGrid) Clone() *CharGrid {
	out := make([][]byte, len(g.cells))
	for y, row := range g.cells {
		out[y] = append([]byte(nil), row...)
	}

	return &CharGrid{cells: out}
}

// Bounds returns the inclusive bounds of the grid.
func (g *CharGrid) Bounds() geo.Bounds {
	return geo.Bounds{Width: g.Cols() - 1, Height: g.Rows() - 1}
}

// String prints the grid, one line per row.
func (g *CharGrid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
