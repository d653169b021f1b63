package geo

// Vector is a line segment from Start to End.
type Vector struct {
	Start, End Point
}

// Points walks from Start to End (both included) one step at a time. Only
// horizontal, vertical and 45 degree segments walk exactly onto End.
func (v Vector) Points() []Point {
	d := v.Direction()
	points := make([]Point, 0, v.Steps()+1)
	for p := v.Start; p != v.End; p = p.Add(d) {
		points = append(points, p)
	}

	return append(points, v.End)
}

// Direction returns the unit step (sign of dx, sign of dy).
func (v Vector) Direction() Point {
	return Point{sign(v.End.X - v.Start.X), sign(v.End.Y - v.Start.Y)}
}

// IsHorizontal reports whether the segment runs along the x axis.
func (v Vector) IsHorizontal() bool { return v.Start.X != v.End.X && v.Start.Y == v.End.Y }

// IsVertical reports whether the segment runs along the y axis.
func (v Vector) IsVertical() bool { return v.Start.X == v.End.X && v.Start.Y != v.End.Y }

// IsDiagonal reports whether the segment is at exactly 45 degrees.
func (v Vector) IsDiagonal() bool {
	return !v.IsHorizontal() && !v.IsVertical() &&
		abs(v.End.X-v.Start.X) == abs(v.End.Y-v.Start.Y)
}

// Steps returns the manhattan length of the segment.
func (v Vector) Steps() int { return v.Start.Manhattan(v.End) }

// Bounds is an axis aligned rectangle; Contains treats both edges as inclusive.
type Bounds struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies within the rectangle.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
