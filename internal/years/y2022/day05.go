package y2022

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"slices"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2022, Day: 5, Name: "Supply Stacks",
		New: func() solution.Solver { return &day05{} },
	})
}

type move struct {
	count, from, to int
}

type day05 struct {
	stacks [][]byte
	moves  []move
}

// ReadInput keeps the drawing untrimmed; its leading spaces position the crates.
func (d *day05) ReadInput(in *input.Loader) error {
	s, err := in.String()
	if err != nil {
		return err
	}

	drawing, moves, ok := strings.Cut(s, "\n\n")
	if !ok {
		return fmt.Errorf("no blank line between crates and moves")
	}

	rows := input.SplitLines(drawing)
	if len(rows) == 0 {
		return fmt.Errorf("no crates drawn")
	}
	d.stacks = make([][]byte, len(strings.Fields(rows[len(rows)-1])))
	for i := len(rows) - 2; i >= 0; i-- {
		row := rows[i]
		for col := 0; col < len(d.stacks) && 4*col+1 < len(row); col++ {
			if c := row[4*col+1]; c != ' ' {
				d.stacks[col] = append(d.stacks[col], c)
			}
		}
	}

	for _, line := range input.SplitLines(strings.TrimSpace(moves)) {
		var m move
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.count, &m.from, &m.to); err != nil {
			return fmt.Errorf("invalid move %q: %w", line, err)
		}
		if m.from < 1 || m.from > len(d.stacks) || m.to < 1 || m.to > len(d.stacks) {
			return fmt.Errorf("move %q references an unknown stack", line)
		}
		d.moves = append(d.moves, m)
	}

	return nil
}

// Part1 moves crates one at a time.
func (d *day05) Part1() any { return d.rearrange(true) }

// Part2 moves a group of crates at once, keeping their order.
func (d *day05) Part2() any { return d.rearrange(false) }

func (d *day05) rearrange(oneByOne bool) string {
	stacks := make([][]byte, len(d.stacks))
	for i, s := range d.stacks {
		stacks[i] = slices.Clone(s)
	}

	for _, m := range d.moves {
		from := stacks[m.from-1]
		count := min(m.count, len(from))
		crates := slices.Clone(from[len(from)-count:])
		if oneByOne {
			slices.Reverse(crates)
		}
		stacks[m.from-1] = from[:len(from)-count]
		stacks[m.to-1] = append(stacks[m.to-1], crates...)
	}

	var top strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			top.WriteByte(s[len(s)-1])
		}
	}

	return top.String()
}
