package y2024

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2024, Day: 19, Name: "Linen Layout",
		New: func() solution.Solver { return &day19{} },
	})
}

type day19 struct {
	towels  []string
	designs []string
}

func (d *day19) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) != 2 {
		return fmt.Errorf("expected towels and designs, got %d blocks", len(blocks))
	}

	for _, t := range strings.Split(blocks[0], ",") {
		d.towels = append(d.towels, strings.TrimSpace(t))
	}
	d.designs = input.SplitLines(blocks[1])

	return nil
}

// arrangements counts the ways design can be made from the towels.
func (d *day19) arrangements(design string) int {
	ways := make([]int, len(design)+1)
	ways[0] = 1
	for i := range len(design) {
		if ways[i] == 0 {
			continue
		}
		for _, t := range d.towels {
			if strings.HasPrefix(design[i:], t) {
				ways[i+len(t)] += ways[i]
			}
		}
	}

	return ways[len(design)]
}

func (d *day19) Part1() any {
	n := 0
	for _, design := range d.designs {
		if d.arrangements(design) > 0 {
			n++
		}
	}

	return n
}

func (d *day19) Part2() any {
	total := 0
	for _, design := range d.designs {
		total += d.arrangements(design)
	}

	return total
}
