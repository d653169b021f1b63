package y2024

import (
	"advent/internal/algo"
	"advent/internal/geo"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"sort"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 18, Name: "RAM Run",
		New: func() solution.Solver { return &day18{size: 71, fallen: 1024} },
		// the search for the blocking byte dominates a benchmark
		Part2Runs: 1,
	})
}

type day18 struct {
	// size is the width and height of the memory space
	size   int
	fallen int
	bytes  []geo.Point
}

func (d *day18) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		p, err := geo.ParsePoint(line)
		if err != nil {
			return err
		}
		d.bytes = append(d.bytes, p)

		return nil
	})
}

// steps returns the shortest path length once n bytes have fallen, or -1.
func (d *day18) steps(n int) int {
	corrupted := make(map[geo.Point]bool, n)
	for _, p := range d.bytes[:min(n, len(d.bytes))] {
		corrupted[p] = true
	}

	exit := geo.Pt(d.size-1, d.size-1)
	dist := algo.BFS(geo.Zero, func(p geo.Point) []geo.Point {
		var out []geo.Point
		for _, q := range p.Neighbours() {
			if q.X >= 0 && q.Y >= 0 && q.X < d.size && q.Y < d.size && !corrupted[q] {
				out = append(out, q)
			}
		}

		return out
	})
	if steps, ok := dist[exit]; ok {
		return steps
	}

	return -1
}

func (d *day18) Part1() any { return d.steps(d.fallen) }

// Part2 finds the first byte that cuts the exit off.
func (d *day18) Part2() any {
	i := sort.Search(len(d.bytes), func(n int) bool { return d.steps(n+1) < 0 })
	if i == len(d.bytes) {
		return ""
	}

	return fmt.Sprintf("%d,%d", d.bytes[i].X, d.bytes[i].Y)
}
