package y2021

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
	"unicode"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2021, Day: 12, Name: "Passage Pathing",
		New: func() solution.Solver { return &day12{} },
	})
}

type day12 struct {
	caves map[string][]string
}

func (d *day12) ReadInput(in *input.Loader) error {
	d.caves = map[string][]string{}

	return in.EachLine(func(line string) error {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			return fmt.Errorf("invalid passage %q", line)
		}
		d.caves[a] = append(d.caves[a], b)
		d.caves[b] = append(d.caves[b], a)

		return nil
	})
}

func (d *day12) Part1() any {
	return d.paths("start", map[string]int{}, false)
}

// Part2 allows a single small cave to be visited twice.
func (d *day12) Part2() any {
	return d.paths("start", map[string]int{}, true)
}

func (d *day12) paths(cave string, visited map[string]int, canRevisit bool) int {
	if cave == "end" {
		return 1
	}

	small := unicode.IsLower(rune(cave[0]))
	if small {
		visited[cave]++
		defer func() { visited[cave]-- }()
	}

	total := 0
	for _, next := range d.caves[cave] {
		switch {
		case next == "start":
			continue
		case visited[next] == 0:
			total += d.paths(next, visited, canRevisit)
		case canRevisit:
			total += d.paths(next, visited, false)
		}
	}

	return total
}
