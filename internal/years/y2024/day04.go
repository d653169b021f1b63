package y2024

import (
	"advent/internal/geo"
	"advent/internal/grid"
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 4, Name: "Ceres Search",
		New: func() solution.Solver { return &day04{} },
	})
}

type day04 struct {
	puzzle *grid.CharGrid
}

func (d *day04) ReadInput(in *input.Loader) (err error) {
	d.puzzle, err = in.CharGrid()

	return err
}

func (d *day04) spells(p, dir geo.Point, word string) bool {
	for i := range len(word) {
		if d.puzzle.AtPoint(p.Add(dir.Scale(i))) != word[i] {
			return false
		}
	}

	return true
}

// Part1 counts XMAS in every direction, overlaps included.
func (d *day04) Part1() any {
	n := 0
	for _, p := range d.puzzle.Find('X') {
		for _, dir := range geo.Zero.AllNeighbours() {
			if d.spells(p, dir, "XMAS") {
				n++
			}
		}
	}

	return n
}

// Part2 counts the A's crossed by two diagonal MAS words.
func (d *day04) Part2() any {
	n := 0
	for _, p := range d.puzzle.Find('A') {
		diagonals := 0
		for _, dir := range geo.Zero.CornerNeighbours() {
			if d.spells(p.Sub(dir), dir, "MAS") {
				diagonals++
			}
		}
		if diagonals == 2 {
			n++
		}
	}

	return n
}
