package y2025

import (
	"cmp"
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2025, Day: 5, Name: "Cafeteria",
		New: func() solution.Solver { return &day05{} },
	})
}

// day05 checks ingredient IDs against the fresh ranges.
type day05 struct {
	fresh []idRange
	ids   []int64
}

func (d *day05) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) != 2 {
		return fmt.Errorf("expected ranges and ids, got %d blocks", len(blocks))
	}

	var ranges []idRange
	for _, line := range input.SplitLines(blocks[0]) {
		lo, hi, _ := strings.Cut(line, "-")
		lower, err := strconv.ParseInt(lo, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid range %q: %w", line, err)
		}
		upper, err := strconv.ParseInt(hi, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid range %q: %w", line, err)
		}
		ranges = append(ranges, idRange{lower, upper})
	}
	d.fresh = merge(ranges)

	for _, line := range input.SplitLines(blocks[1]) {
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", line, err)
		}
		d.ids = append(d.ids, id)
	}

	return nil
}

func (d *day05) Part1() any {
	fresh := 0
	for _, id := range d.ids {
		if slices.ContainsFunc(d.fresh, func(r idRange) bool { return id >= r.lower && id <= r.upper }) {
			fresh++
		}
	}

	return fresh
}

// Part2 counts every ID covered by the merged ranges.
func (d *day05) Part2() any {
	var total int64
	for _, r := range d.fresh {
		total += r.upper - r.lower + 1
	}

	return total
}

// merge sorts ranges and joins the overlapping ones.
func merge(ranges []idRange) []idRange {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b idRange) int { return cmp.Compare(a.lower, b.lower) })

	var out []idRange
	for _, r := range sorted {
		if n := len(out); n > 0 && r.lower <= out[n-1].upper {
			out[n-1].upper = max(out[n-1].upper, r.upper)

			continue
		}
		out = append(out, r)
	}

	return out
}
