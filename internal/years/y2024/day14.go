package y2024

import (
	"advent/internal/geo"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 14, Name: "Restroom Redoubt",
		New: func() solution.Solver { return &day14{width: 101, height: 103} },
	})
}

type robot struct {
	pos, velocity geo.Point
}

type day14 struct {
	width, height int
	robots        []robot
}

func (d *day14) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		v := input.Ints(line)
		if len(v) != 4 {
			return fmt.Errorf("invalid robot %q", line)
		}
		d.robots = append(d.robots, robot{pos: geo.Pt(v[0], v[1]), velocity: geo.Pt(v[2], v[3])})

		return nil
	})
}

func wrap(v, size int) int { return (v%size + size) % size }

func (d *day14) after(r robot, seconds int) geo.Point {
	p := r.pos.Add(r.velocity.Scale(seconds))

	return geo.Pt(wrap(p.X, d.width), wrap(p.Y, d.height))
}

// Part1 multiplies the robot counts of the four quadrants after 100 seconds;
// robots on the middle lines belong to none.
func (d *day14) Part1() any {
	var quadrants [4]int
	midX, midY := d.width/2, d.height/2
	for _, r := range d.robots {
		p := d.after(r, 100)
		if p.X == midX || p.Y == midY {
			continue
		}
		q := 0
		if p.X > midX {
			q++
		}
		if p.Y > midY {
			q += 2
		}
		quadrants[q]++
	}

	return quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]
}

// Part2 finds the first second at which no two robots share a position,
// which is when they draw the picture. Positions repeat after width*height
// seconds, so -1 means there is none.
func (d *day14) Part2() any {
	for s := 1; s <= d.width*d.height; s++ {
		seen := make(map[geo.Point]bool, len(d.robots))
		for _, r := range d.robots {
			seen[d.after(r, s)] = true
		}
		if len(seen) == len(d.robots) {
			return s
		}
	}

	return -1
}
