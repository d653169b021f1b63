package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 4, Name: "Camp Cleanup",
		New: func() solution.Solver { return &day04{} },
	})
}

type sections struct {
	from, to int
}

func (s sections) contains(o sections) bool { return s.from <= o.from && o.to <= s.to }

func (s sections) overlaps(o sections) bool { return s.from <= o.to && o.from <= s.to }

type day04 struct {
	pairs [][2]sections
}

func (d *day04) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		var a, b sections
		if _, err := fmt.Sscanf(line, "%d-%d,%d-%d", &a.from, &a.to, &b.from, &b.to); err != nil {
			return fmt.Errorf("invalid assignment %q: %w", line, err)
		}
		d.pairs = append(d.pairs, [2]sections{a, b})

		return nil
	})
}

func (d *day04) Part1() any {
	n := 0
	for _, p := range d.pairs {
		if p[0].contains(p[1]) || p[1].contains(p[0]) {
			n++
		}
	}

	return n
}

func (d *day04) Part2() any {
	n := 0
	for _, p := range d.pairs {
		if p[0].overlaps(p[1]) {
			n++
		}
	}

	return n
}
