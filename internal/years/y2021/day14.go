package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"math"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 14, Name: "Extended Polymerization",
		New: func() solution.Solver { return &day14{} },
	})
}

// day14 tracks pair counts; the polymer itself grows exponentially.
type day14 struct {
	template string
	rules    map[string]byte
}

func (d *day14) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) != 2 {
		return fmt.Errorf("expected template and rules, got %d blocks", len(blocks))
	}

	d.template = strings.TrimSpace(blocks[0])
	d.rules = map[string]byte{}
	for _, line := range input.SplitLines(blocks[1]) {
		pair, insert, ok := strings.Cut(line, " -> ")
		if !ok || len(pair) != 2 || len(insert) != 1 {
			return fmt.Errorf("invalid rule %q", line)
		}
		d.rules[pair] = insert[0]
	}

	return nil
}

func (d *day14) Part1() any { return d.grow(10) }

func (d *day14) Part2() any { return d.grow(40) }

// grow returns the most common minus the least common element count.
func (d *day14) grow(steps int) int {
	pairs := map[string]int{}
	for i := 0; i+1 < len(d.template); i++ {
		pairs[d.template[i:i+2]]++
	}

	for range steps {
		next := make(map[string]int, len(pairs))
		for pair, n := range pairs {
			insert, ok := d.rules[pair]
			if !ok {
				next[pair] += n

				continue
			}
			next[string([]byte{pair[0], insert})] += n
			next[string([]byte{insert, pair[1]})] += n
		}
		pairs = next
	}

	// every element but the last starts exactly one pair
	counts := map[byte]int{d.template[len(d.template)-1]: 1}
	for pair, n := range pairs {
		counts[pair[0]] += n
	}

	most, least := 0, math.MaxInt
	for _, n := range counts {
		most, least = max(most, n), min(least, n)
	}

	return most - least
}
