package y2021

import (
	"advent/internal/geo"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 17, Name: "Trick Shot",
		New: func() solution.Solver { return &day17{} },
	})
}

// day17 holds the target area with y growing upwards; the target is below the probe.
type day17 struct {
	target geo.Bounds
}

func (d *day17) ReadInput(in *input.Loader) error {
	s, err := in.String()
	if err != nil {
		return err
	}

	v := input.Ints(s)
	if len(v) != 4 {
		return fmt.Errorf("invalid target area %q", s)
	}
	x0, y0 := min(v[0], v[1]), min(v[2], v[3])
	d.target = geo.Bounds{X: x0, Y: y0, Width: max(v[0], v[1]) - x0, Height: max(v[2], v[3]) - y0}

	return nil
}

// Part1 is the highest point of the steepest shot; the probe comes back down
// through y=0 at speed vy+1, so the best vy ends just inside the lowest row.
func (d *day17) Part1() any {
	vy := -d.target.Y - 1

	return vy * (vy + 1) / 2
}

func (d *day17) Part2() any {
	hits := 0
	for vx := 1; vx <= d.target.X+d.target.Width; vx++ {
		for vy := d.target.Y; vy < -d.target.Y; vy++ {
			if d.hits(vx, vy) {
				hits++
			}
		}
	}

	return hits
}

func (d *day17) hits(vx, vy int) bool {
	var p geo.Point
	for p.X <= d.target.X+d.target.Width && p.Y >= d.target.Y {
		if d.target.Contains(p) {
			return true
		}
		p = p.Translate(vx, vy)
		vx -= min(vx, 1)
		vy--
	}

	return false
}
