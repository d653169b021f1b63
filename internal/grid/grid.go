package grid

import "advent/internal/geo"

// Grid is a dense, fixed size grid of T.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// NewGrid returns a width x height grid of zero values.
func NewGrid[T any](width, height int) *Grid[T] {
	return &Grid[T]{width: width, height: height, cells: make([]T, width*height)}
}

// FromLines builds a grid from lines, converting every byte with fn.
func FromLines[T any](lines []string, fn func(p geo.Point, c byte) T) *Grid[T] {
	width := 0
	if len(lines) > 0 {
		width = len(lines[0])
	}
	g := NewGrid[T](width, len(lines))
	for y, line := range lines {
		for x := 0; x < len(line) && x < width; x++ {
			g.Set(x, y, fn(geo.Pt(x, y), line[x]))
		}
	}

	return g
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Contains reports whether p lies within the grid.
func (g *Grid[T]) Contains(p geo.Point) bool { return g.InBounds(p.X, p.Y) }

// At returns the value at (x, y); positions outside yield the zero value.
func (g *Grid[T]) At(x, y int) T {
	if !g.InBounds(x, y) {
		var zero T

		return zero
	}

	return g.cells[y*g.width+x]
}

// AtPoint returns the value at p.
func (g *Grid[T]) AtPoint(p geo.Point) T { return g.At(p.X, p.Y) }

// Set stores v at (x, y); positions outside are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = v
	}
}

// SetPoint stores v at p.
func (g *Grid[T]) SetPoint(p geo.Point, v T) { g.Set(p.X, p.Y, v) }

// Find returns the positions whose value satisfies match, row by row.
func (g *Grid[T]) Find(match func(T) bool) []geo.Point {
	var out []geo.Point
	for i, v := range g.cells {
		if match(v) {
			out = append(out, geo.Pt(i%g.width, i/g.width))
		}
	}

	return out
}

// VirtualGrid is a window centred on a movable position of another grid.
type VirtualGrid[T comparable] struct {
	delegate interface{ At(x, y int) T }
	width    int
	height   int
	center   geo.Point
}

// NewVirtual returns a window over any grid.
func NewVirtual[T comparable](delegate interface{ At(x, y int) T }, width, height int) *VirtualGrid[T] {
	return &VirtualGrid[T]{delegate: delegate, width: width, height: height}
}

// Position moves the window centre.
func (v *VirtualGrid[T]) Position(x, y int) { v.center = geo.Pt(x, y) }

// At returns the value at (x, y) relative to the window's top-left corner.
func (v *VirtualGrid[T]) At(x, y int) T {
	return v.delegate.At(v.center.X-v.width/2+x, v.center.Y-v.height/2+y)
}

// Count returns how many cells of the window equal value.
func (v *VirtualGrid[T]) Count(value T) int {
	n := 0
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			if v.At(x, y) == value {
				n++
			}
		}
	}

	return n
}
