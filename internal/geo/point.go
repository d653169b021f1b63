// Package geo holds the 2D primitives most puzzles are built on. The y axis
// grows downwards, matching how puzzle grids are printed.
package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a position or a direction on the plane.
type Point struct {
	X, Y int
}

// Common directions.
var (
	Zero  = Point{0, 0}  //nolint: gochecknoglobals
	East  = Point{1, 0}  //nolint: gochecknoglobals
	West  = Point{-1, 0} //nolint: gochecknoglobals
	North = Point{0, -1} //nolint: gochecknoglobals
	South = Point{0, 1}  //nolint: gochecknoglobals
)

// Directions lists the four orthogonal directions, clockwise from north.
var Directions = [4]Point{North, East, South, West} //nolint: gochecknoglobals

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// ParsePoint parses "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("point %q has no comma", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("could not parse x of %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("could not parse y of %q: %w", s, err)
	}

	return Point{x, y}, nil
}

// DirectionFromChar maps U/N, D/S and R/E to their direction; anything else is west.
func DirectionFromChar(c byte) Point {
	switch c {
	case 'U', 'N', '^':
		return North
	case 'D', 'S', 'v':
		return South
	case 'R', 'E', '>':
		return East
	default:
		return West
	}
}

// Add translates p by d.
func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }

// Translate translates p by (dx, dy).
func (p Point) Translate(dx, dy int) Point { return Point{p.X + dx, p.Y + dy} }

// Sub returns p - o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale multiplies both coordinates by f.
func (p Point) Scale(f int) Point { return Point{p.X * f, p.Y * f} }

// RotateCW rotates a direction a quarter turn clockwise.
func (p Point) RotateCW() Point { return Point{-p.Y, p.X} }

// RotateCCW rotates a direction a quarter turn counter clockwise.
func (p Point) RotateCCW() Point { return Point{p.Y, -p.X} }

// Inverse returns the direction with the same magnitude pointing the other way.
func (p Point) Inverse() Point { return Point{-p.X, -p.Y} }

// Touches reports whether o is p or one of its eight neighbours.
func (p Point) Touches(o Point) bool {
	return p.X >= o.X-1 && p.X <= o.X+1 && p.Y >= o.Y-1 && p.Y <= o.Y+1
}

// Manhattan returns the taxicab distance between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Point) Left() Point  { return p.Translate(-1, 0) }
func (p Point) Right() Point { return p.Translate(1, 0) }
func (p Point) Up() Point    { return p.Translate(0, -1) }
func (p Point) Down() Point  { return p.Translate(0, 1) }

func (p Point) IsLeft() bool       { return p.X < 0 }
func (p Point) IsRight() bool      { return p.X > 0 }
func (p Point) IsUp() bool         { return p.Y < 0 }
func (p Point) IsDown() bool       { return p.Y > 0 }
func (p Point) IsHorizontal() bool { return p.X != 0 }

// Neighbours returns the four orthogonally adjacent points.
func (p Point) Neighbours() [4]Point {
	return [4]Point{p.Up(), p.Right(), p.Down(), p.Left()}
}

// CornerNeighbours returns the four diagonally adjacent points.
func (p Point) CornerNeighbours() [4]Point {
	return [4]Point{p.Translate(1, 1), p.Translate(-1, -1), p.Translate(-1, 1), p.Translate(1, -1)}
}

// AllNeighbours returns the eight adjacent points.
func (p Point) AllNeighbours() [8]Point {
	n, c := p.Neighbours(), p.CornerNeighbours()

	return [8]Point{n[0], n[1], n[2], n[3], c[0], c[1], c[2], c[3]}
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
