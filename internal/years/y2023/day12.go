package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"slices"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 12, Name: "Hot Springs",
		New: func() solution.Solver { return &day12{} },
	})
}

type springRow struct {
	conditions string
	groups     []int
}

// arrangements counts the ways the unknown springs can satisfy the damaged groups.
func (r springRow) arrangements() int {
	memo := map[[2]int]int{}
	var count func(pos, group int) int
	count = func(pos, group int) int {
		if pos >= len(r.conditions) {
			return boolInt(group == len(r.groups))
		}
		key := [2]int{pos, group}
		if v, ok := memo[key]; ok {
			return v
		}

		total := 0
		c := r.conditions[pos]
		if c != '#' {
			total += count(pos+1, group)
		}
		if c != '.' && group < len(r.groups) {
			end := pos + r.groups[group]
			if end <= len(r.conditions) && !strings.Contains(r.conditions[pos:end], ".") &&
				(end == len(r.conditions) || r.conditions[end] != '#') {
				total += count(end+1, group+1)
			}
		}
		memo[key] = total

		return total
	}

	return count(0, 0)
}

func (r springRow) unfold(times int) springRow {
	conditions := make([]string, times)
	var groups []int
	for i := range times {
		conditions[i] = r.conditions
		groups = append(groups, r.groups...)
	}

	return springRow{conditions: strings.Join(conditions, "?"), groups: groups}
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

type day12 struct {
	rows []springRow
}

func (d *day12) ReadInput(in *input.Loader) error {
	return in.EachLine(func(line string) error {
		conditions, groups, ok := strings.Cut(line, " ")
		if !ok {
			return fmt.Errorf("invalid row %q", line)
		}
		d.rows = append(d.rows, springRow{conditions: conditions, groups: slices.Clip(input.Ints(groups))})

		return nil
	})
}

func (d *day12) Part1() any {
	total := 0
	for _, r := range d.rows {
		total += r.arrangements()
	}

	return total
}

// Part2 unfolds every row five times.
func (d *day12) Part2() any {
	total := 0
	for _, r := range d.rows {
		total += r.unfold(5).arrangements()
	}

	return total
}
