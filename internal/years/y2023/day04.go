package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 4,
		New: func() solution.Solver { return &day04{} },
	})
}

// day04 keeps the number of winning numbers on every scratchcard.
type day04 struct {
	matches []int
}

func (d *day04) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		_, numbers, ok := strings.Cut(line, ":")
		winning, own, ok2 := strings.Cut(numbers, "|")
		if !ok || !ok2 {
			return fmt.Errorf("invalid card %q", line)
		}

		wins := map[int]bool{}
		for _, n := range input.Ints(winning) {
			wins[n] = true
		}
		matches := 0
		for _, n := range input.Ints(own) {
			if wins[n] {
				matches++
			}
		}
		d.matches = append(d.matches, matches)

		return nil
	})
}

func (d *day04) Part1() any {
	points := 0
	for _, m := range d.matches {
		if m > 0 {
			points += 1 << (m - 1)
		}
	}

	return points
}

// Part2 counts the cards once every match has won copies of the following cards.
func (d *day04) Part2() any {
	copies := make([]int, len(d.matches))
	total := 0
	for i, m := range d.matches {
		copies[i]++
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}

	return total
}
