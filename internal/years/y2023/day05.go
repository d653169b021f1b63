package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"math"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 5, Name: "If You Give A Seed A Fertilizer",
		New: func() solution.Solver { return &day05{} },
	})
}

type mapping struct {
	dst, src, length int
}

// span is a half open range of ids.
type span struct {
	from, to int
}

type day05 struct {
	seeds  []int
	stages [][]mapping
}

func (d *day05) ReadInput(in *input.Loader) error {
	blocks, err := in.Blocks()
	if err != nil {
		return err
	}
	if len(blocks) < 2 {
		return fmt.Errorf("expected seeds and maps, got %d blocks", len(blocks))
	}

	d.seeds = input.Ints(blocks[0])
	for _, b := range blocks[1:] {
		var stage []mapping
		for _, line := range input.SplitLines(b)[1:] {
			v := input.Ints(line)
			if len(v) != 3 {
				return fmt.Errorf("invalid mapping %q", line)
			}
			stage = append(stage, mapping{dst: v[0], src: v[1], length: v[2]})
		}
		d.stages = append(d.stages, stage)
	}

	return nil
}

// translate passes spans through a stage, splitting them where mappings start or end.
func translate(spans []span, stage []mapping) []span {
	var out []span
	for len(spans) > 0 {
		s := spans[len(spans)-1]
		spans = spans[:len(spans)-1]

		mapped := false
		for _, m := range stage {
			lo, hi := max(s.from, m.src), min(s.to, m.src+m.length)
			if lo >= hi {
				continue
			}
			out = append(out, span{lo - m.src + m.dst, hi - m.src + m.dst})
			if s.from < lo {
				spans = append(spans, span{s.from, lo})
			}
			if hi < s.to {
				spans = append(spans, span{hi, s.to})
			}
			mapped = true

			break
		}
		if !mapped {
			out = append(out, s)
		}
	}

	return out
}

func (d *day05) lowest(spans []span) int {
	for _, stage := range d.stages {
		spans = translate(spans, stage)
	}

	lowest := math.MaxInt
	for _, s := range spans {
		lowest = min(lowest, s.from)
	}

	return lowest
}

func (d *day05) Part1() any {
	spans := make([]span, len(d.seeds))
	for i, s := range d.seeds {
		spans[i] = span{s, s + 1}
	}

	return d.lowest(spans)
}

// Part2 reads the seeds as pairs of start and length.
func (d *day05) Part2() any {
	var spans []span
	for i := 0; i+1 < len(d.seeds); i += 2 {
		spans = append(spans, span{d.seeds[i], d.seeds[i] + d.seeds[i+1]})
	}

	return d.lowest(spans)
}
