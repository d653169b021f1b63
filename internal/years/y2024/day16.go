package y2024

import (
	"advent/internal/algo"
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"math"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 16, Name: "Reindeer Maze",
		New: func() solution.Solver { return &day16{} },
	})
}

type reindeer struct {
	pos, dir geo.Point
}

type day16 struct {
	maze       *grid.CharGrid
	start, end geo.Point

	// cost of the cheapest route from the start to every state, and from every state to the end
	fromStart, toEnd map[reindeer]int
}

func (d *day16) ReadInput(in *input.Loader) error {
	maze, err := in.CharGrid()
	if err != nil {
		return err
	}

	var okStart, okEnd bool
	d.start, okStart = maze.FindFirst('S')
	d.end, okEnd = maze.FindFirst('E')
	if !okStart || !okEnd {
		return fmt.Errorf("maze needs a start and an end")
	}
	d.maze = maze

	d.fromStart = algo.Distances([]reindeer{{d.start, geo.East}}, d.moves(false))
	ends := make([]reindeer, 0, len(geo.Directions))
	for _, dir := range geo.Directions {
		ends = append(ends, reindeer{d.end, dir})
	}
	d.toEnd = algo.Distances(ends, d.moves(true))

	return nil
}

// moves steps forward for 1 point or turns for 1000. Walking backwards
// undoes a forward step, for searching from the end.
func (d *day16) moves(backwards bool) func(reindeer) []algo.Edge[reindeer] {
	return func(r reindeer) []algo.Edge[reindeer] {
		edges := []algo.Edge[reindeer]{
			{To: reindeer{r.pos, r.dir.RotateCW()}, Cost: 1000},
			{To: reindeer{r.pos, r.dir.RotateCCW()}, Cost: 1000},
		}
		step := r.dir
		if backwards {
			step = step.Inverse()
		}
		if next := r.pos.Add(step); d.maze.AtPoint(next) != '#' && d.maze.Contains(next) {
			edges = append(edges, algo.Edge[reindeer]{To: reindeer{next, r.dir}, Cost: 1})
		}

		return edges
	}
}

func (d *day16) best() int {
	best := math.MaxInt
	for _, dir := range geo.Directions {
		if c, ok := d.fromStart[reindeer{d.end, dir}]; ok {
			best = min(best, c)
		}
	}

	return best
}

func (d *day16) Part1() any { return d.best() }

// Part2 counts the tiles that lie on any of the cheapest routes.
func (d *day16) Part2() any {
	best := d.best()
	tiles := map[geo.Point]bool{}
	for state, cost := range d.fromStart {
		if rest, ok := d.toEnd[state]; ok && cost+rest == best {
			tiles[state.pos] = true
		}
	}

	return len(tiles)
}
