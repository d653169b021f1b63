package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 2, Name: "Cube Conundrum",
		New: func() solution.Solver { return &day02{} },
	})
}

// cubes counts red, green and blue cubes.
type cubes [3]int

var colours = map[string]int{"red": 0, "green": 1, "blue": 2} //nolint: gochecknoglobals

type game struct {
	id      int
	largest cubes
}

type day02 struct {
	games []game
}

func (d *day02) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		var g game
		head, draws, ok := strings.Cut(line, ": ")
		if _, err := fmt.Sscanf(head, "Game %d", &g.id); !ok || err != nil {
			return fmt.Errorf("invalid game %q", line)
		}

		for _, draw := range strings.FieldsFunc(draws, func(r rune) bool { return r == ';' || r == ',' }) {
			var n int
			var colour string
			if _, err := fmt.Sscanf(strings.TrimSpace(draw), "%d %s", &n, &colour); err != nil {
				return fmt.Errorf("invalid draw %q: %w", draw, err)
			}
			idx, ok := colours[colour]
			if !ok {
				return fmt.Errorf("unknown colour %q", colour)
			}
			g.largest[idx] = max(g.largest[idx], n)
		}
		d.games = append(d.games, g)

		return nil
	})
}

// Part1 sums the ids of the games possible with 12 red, 13 green and 14 blue cubes.
func (d *day02) Part1() any {
	bag := cubes{12, 13, 14}
	total := 0
	for _, g := range d.games {
		if g.largest[0] <= bag[0] && g.largest[1] <= bag[1] && g.largest[2] <= bag[2] {
			total += g.id
		}
	}

	return total
}

// Part2 sums the power of the minimal set of cubes of every game.
func (d *day02) Part2() any {
	total := 0
	for _, g := range d.games {
		total += g.largest[0] * g.largest[1] * g.largest[2]
	}

	return total
}
