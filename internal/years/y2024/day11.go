package y2024

import (
	"advent/internal/input"
	"advent/internal/solution"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 11, Name: "Plutonian Pebbles",
		New: func() solution.Solver { return &day11{} },
	})
}

type day11 struct {
	stones []int
}

func (d *day11) ReadInput(in *input.Loader) error {
	s, err := in.String()
	d.stones = input.Ints(s)

	return err
}

func digitCount(v int) int {
	n := 1
	for ; v >= 10; v /= 10 {
		n++
	}

	return n
}

func blink(stone int) []int {
	if stone == 0 {
		return []int{1}
	}
	if n := digitCount(stone); n%2 == 0 {
		half := 1
		for range n / 2 {
			half *= 10
		}

		return []int{stone / half, stone % half}
	}

	return []int{stone * 2024}
}

// count tracks how many stones carry each number; order never matters.
func (d *day11) count(blinks int) int {
	stones := map[int]int{}
	for _, s := range d.stones {
		stones[s]++
	}

	for range blinks {
		next := make(map[int]int, len(stones))
		for s, n := range stones {
			for _, b := range blink(s) {
				next[b] += n
			}
		}
		stones = next
	}

	total := 0
	for _, n := range stones {
		total += n
	}

	return total
}

func (d *day11) Part1() any { return d.count(25) }

func (d *day11) Part2() any { return d.count(75) }
