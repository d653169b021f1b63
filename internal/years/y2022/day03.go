package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"math/bits"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 3, Name: "Rucksack Reorganization",
		New: func() solution.Solver { return &day03{} },
	})
}

type day03 struct {
	rucksacks []string
}

func (d *day03) ReadInput(in *input.Loader) (err error) {
	d.rucksacks, err = in.Lines()

	return err
}

// items returns the set of item priorities in s as a bit mask.
func items(s string) uint64 {
	var set uint64
	for i := 0; i < len(s); i++ {
		set |= 1 << priority(s[i])
	}

	return set
}

func priority(c byte) int {
	if c >= 'a' {
		return int(c-'a') + 1
	}

	return int(c-'A') + 27
}

// common returns the priority of the item shared by all sets, 0 if none.
func common(sets ...uint64) int {
	shared := ^uint64(0)
	for _, s := range sets {
		shared &= s
	}
	if shared == 0 {
		return 0
	}

	return bits.TrailingZeros64(shared)
}

func (d *day03) Part1() any {
	total := 0
	for _, r := range d.rucksacks {
		half := len(r) / 2
		total += common(items(r[:half]), items(r[half:]))
	}

	return total
}

// Part2 sums the badges of every group of three elves.
func (d *day03) Part2() any {
	total := 0
	for i := 0; i+2 < len(d.rucksacks); i += 3 {
		total += common(items(d.rucksacks[i]), items(d.rucksacks[i+1]), items(d.rucksacks[i+2]))
	}

	return total
}
