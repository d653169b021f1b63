package y2024

import (
	"advent/internal/algo"
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 20, Name: "Race Condition",
		New: func() solution.Solver { return &day20{minSaving: 100} },
	})
}

type day20 struct {
	minSaving int

	// distance from the start of every track position
	track map[geo.Point]int
}

func (d *day20) ReadInput(in *input.Loader) error {
	racetrack, err := in.CharGrid()
	if err != nil {
		return err
	}

	start, ok := racetrack.FindFirst('S')
	if !ok {
		return fmt.Errorf("racetrack has no start")
	}
	d.track = algo.BFS(start, func(p geo.Point) []geo.Point {
		var out []geo.Point
		for _, n := range p.Neighbours() {
			if c := racetrack.AtPoint(n); c != '#' && c != grid.Outside {
				out = append(out, n)
			}
		}

		return out
	})

	return nil
}

// cheats counts the shortcuts of at most length picoseconds that save at
// least minSaving. A cheat jumps between two track positions.
func (d *day20) cheats(length int) int {
	n := 0
	for from, a := range d.track {
		for dy := -length; dy <= length; dy++ {
			span := length - algo.Abs(dy)
			for dx := -span; dx <= span; dx++ {
				to := from.Translate(dx, dy)
				b, ok := d.track[to]
				if ok && b-a-from.Manhattan(to) >= d.minSaving {
					n++
				}
			}
		}
	}

	return n
}

func (d *day20) Part1() any { return d.cheats(2) }

// Part2 allows cheats of up to 20 picoseconds.
func (d *day20) Part2() any { return d.cheats(20) }
