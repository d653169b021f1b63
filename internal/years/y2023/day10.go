package y2023

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
		Year: 2023, Day: 10, Name: "Pipe Maze",
		New: func() solution.Solver { return &day10{} },
	})
}

var pipes = map[byte][2]geo.Point{ //nolint: gochecknoglobals
	'|': {geo.North, geo.South},
	'-': {geo.East, geo.West},
	'L': {geo.North, geo.East},
	'J': {geo.North, geo.West},
	'7': {geo.South, geo.West},
	'F': {geo.South, geo.East},
}

func connects(c byte, dir geo.Point) bool {
	ends, ok := pipes[c]

	return ok && (ends[0] == dir || ends[1] == dir)
}

// day10 keeps the main loop in walking order, starting at S.
type day10 struct {
	loop []geo.Point
}

func (d *day10) ReadInput(in *input.Loader) error {
	maze, err := in.CharGrid()
	if err != nil {
		return err
	}

	start, ok := maze.FindFirst('S')
	if !ok {
		return fmt.Errorf("maze has no start")
	}

	var dir geo.Point
	found := false
	for _, dir = range geo.Directions {
		if connects(maze.AtPoint(start.Add(dir)), dir.Inverse()) {
			found = true

			break
		}
	}
	if !found {
		return fmt.Errorf("no pipe connects to the start")
	}

	d.loop = walkLoop(maze, start, dir)

	return nil
}

func walkLoop(maze *grid.CharGrid, start, dir geo.Point) []geo.Point {
	loop := []geo.Point{start}
	for p := start.Add(dir); p != start; p = p.Add(dir) {
		loop = append(loop, p)
		ends := pipes[maze.AtPoint(p)]
		if ends[0] == dir.Inverse() {
			dir = ends[1]
		} else {
			dir = ends[0]
		}
	}

	return loop
}

// Part1 is the distance to the point of the loop farthest from the start.
func (d *day10) Part1() any { return len(d.loop) / 2 }

// Part2 counts the tiles enclosed by the loop using the shoelace formula
// and Pick's theorem.
func (d *day10) Part2() any {
	area := 0
	for i, p := range d.loop {
		q := d.loop[(i+1)%len(d.loop)]
		area += p.X*q.Y - q.X*p.Y
	}

	return algo.Abs(area)/2 - len(d.loop)/2 + 1
}
