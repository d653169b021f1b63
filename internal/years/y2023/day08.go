package y2023

import (
	"advent/internal/algo"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 8, Name: "Haunted Wasteland",
		New: func() solution.Solver { return &day08{} },
	})
}

type day08 struct {
	instructions string
	network      map[string][2]string
}

func (d *day08) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) != 2 {
		return fmt.Errorf("expected instructions and network, got %d blocks", len(blocks))
	}

	d.instructions = strings.TrimSpace(blocks[0])
	d.network = map[string][2]string{}
	for _, line := range input.SplitLines(blocks[1]) {
		node, rest, ok := strings.Cut(line, " = ")
		left, right, ok2 := strings.Cut(strings.Trim(rest, "()"), ", ")
		if !ok || !ok2 {
			return fmt.Errorf("invalid node %q", line)
		}
		d.network[node] = [2]string{left, right}
	}

	return nil
}

// steps walks from node until done holds, returning 0 when the walk cannot
// leave the network.
func (d *day08) steps(node string, done func(string) bool) int {
	n := 0
	for !done(node) {
		next, ok := d.network[node]
		if !ok {
			return 0
		}
		if d.instructions[n%len(d.instructions)] == 'L' {
			node = next[0]
		} else {
			node = next[1]
		}
		n++
	}

	return n
}

func (d *day08) Part1() any {
	if _, ok := d.network["AAA"]; !ok {
		return 0
	}

	return d.steps("AAA", func(n string) bool { return n == "ZZZ" })
}

// Part2 walks every node ending in A at once. Each ghost loops on its
// first Z node, so they meet at the least common multiple.
func (d *day08) Part2() any {
	total := 1
	for node := range d.network {
		if strings.HasSuffix(node, "A") {
			total = algo.LCM(total, d.steps(node, func(n string) bool { return strings.HasSuffix(n, "Z") }))
		}
	}

	return total
}
