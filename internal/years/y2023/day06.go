package y2023

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2023, Day: 6, Name: "Wait For It",
		New: func() solution.Solver { return &day06{} },
	})
}

type day06 struct {
	times, records []int
	// time and record read as one number each, ignoring the spaces
	time, record int
}

func (d *day06) ReadInput(in *input.Loader) error {
	lines, err := in.Lines()
	if err != nil {
		return err
	}
	if len(lines) != 2 {
		return fmt.Errorf("expected times and distances, got %d lines", len(lines))
	}

	_, times, _ := strings.Cut(lines[0], ":")
	_, records, _ := strings.Cut(lines[1], ":")
	if d.times, d.time, err = race(times); err != nil {
		return err
	}
	if d.records, d.record, err = race(records); err != nil {
		return err
	}
	if len(d.times) != len(d.records) {
		return fmt.Errorf("%d times but %d distances", len(d.times), len(d.records))
	}

	return nil
}

// race parses the columns of a line and the number they form when joined.
func race(line string) ([]int, int, error) {
	fields := strings.Fields(line)
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := input.Atoi(f)
		if err != nil {
			return nil, 0, err
		}
		values[i] = v
	}

	joined, err := input.Atoi(strings.Join(fields, ""))
	if err != nil {
		return nil, 0, err
	}

	return values, joined, nil
}

// ways counts the hold times that beat the record. Holding for h travels
// h*(time-h), symmetric around time/2, so only the first winning hold is searched.
func ways(time, record int) int {
	lo, hi := 0, time/2
	if hi*(time-hi) <= record {
		return 0
	}
	for lo < hi {
		mid := (lo + hi) / 2
		if mid*(time-mid) > record {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return time - 2*lo + 1
}

func (d *day06) Part1() any {
	product := 1
	for i := range d.times {
		product *= ways(d.times[i], d.records[i])
	}

	return product
}

// Part2 reads each line as one number.
func (d *day06) Part2() any {
	return ways(d.time, d.record)
}
