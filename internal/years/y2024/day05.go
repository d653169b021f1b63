package y2024

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"slices"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 5, Name: "Print Queue",
		New: func() solution.Solver { return &day05{} },
	})
}

type day05 struct {
	// before holds the page pairs that must be printed in this order
	before  map[[2]int]bool
	updates [][]int
}

func (d *day05) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) != 2 {
		return fmt.Errorf("expected rules and updates, got %d blocks", len(blocks))
	}

	d.before = map[[2]int]bool{}
	for _, line := range input.SplitLines(blocks[0]) {
		v := input.Ints(line)
		if len(v) != 2 {
			return fmt.Errorf("invalid ordering rule %q", line)
		}
		d.before[[2]int{v[0], v[1]}] = true
	}
	for _, line := range input.SplitLines(blocks[1]) {
		d.updates = append(d.updates, input.Ints(line))
	}

	return nil
}

func (d *day05) compare(a, b int) int {
	switch {
	case d.before[[2]int{a, b}]:
		return -1
	case d.before[[2]int{b, a}]:
		return 1
	default:
		return 0
	}
}

// Part1 sums the middle pages of the updates already in order.
func (d *day05) Part1() any {
	total := 0
	for _, u := range d.updates {
		if slices.IsSortedFunc(u, d.compare) {
			total += u[len(u)/2]
		}
	}

	return total
}

// Part2 orders the other updates and sums their middle pages.
func (d *day05) Part2() any {
	total := 0
	for _, u := range d.updates {
		if slices.IsSortedFunc(u, d.compare) {
			continue
		}
		sorted := slices.Clone(u)
		slices.SortFunc(sorted, d.compare)
		total += sorted[len(sorted)/2]
	}

	return total
}
