package y2025

import (
	"advent/internal/input"
	"advent/internal/solution"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

func init() {
	solution.Register(solution.Definition{
		Year: 2025, Day: 2, Name: "Gift Shop",
		New: func() solution.Solver { return &day02{} },
	})
}

type idRange struct {
	lower, upper int64
}

// day02 sums the invalid product IDs: numbers made of a repeated digit block.
type day02 struct {
	ranges []idRange
}

func (d *day02) ReadInput(in *input.Loader) error {
	raw, err := in.String()
	if err != nil {
		return err
	}

	for _, r := range strings.Split(strings.TrimSpace(raw), ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(r), "-")
		if !ok {
			return fmt.Errorf("invalid range %q", r)
		}
		lower, err := strconv.ParseInt(lo, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid range %q: %w", r, err)
		}
		upper, err := strconv.ParseInt(hi, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid range %q: %w", r, err)
		}
		d.ranges = append(d.ranges, idRange{lower, upper})
	}

	return nil
}

// Part1 counts IDs that are a block repeated exactly twice.
func (d *day02) Part1() any {
	total := new(big.Int)
	for _, r := range d.ranges {
		for n := digits(r.lower); n <= digits(r.upper); n++ {
			if n%2 != 0 {
				continue
			}
			lo, hi := clampLength(r, n)
			total.Add(total, sumWithPeriod(n, n/2, lo, hi))
		}
	}

	return total
}

// Part2 counts IDs that are a block repeated at least twice.
func (d *day02) Part2() any {
	total := new(big.Int)
	for _, r := range d.ranges {
		for n := digits(r.lower); n <= digits(r.upper); n++ {
			lo, hi := clampLength(r, n)
			if lo > hi {
				continue
			}
			total.Add(total, sumRepeated(n, lo, hi))
		}
	}

	return total
}

// sumRepeated sums the n digit numbers in [lo, hi] that have a period smaller
// than n, counting each number once under its minimal period.
func sumRepeated(n int, lo, hi int64) *big.Int {
	periods := divisors(n)
	minimal := map[int]*big.Int{}
	total := new(big.Int)
	for _, p := range periods {
		if p == n {
			continue
		}
		s := sumWithPeriod(n, p, lo, hi)
		for _, q := range periods {
			if q >= p {
				break
			}
			if p%q == 0 {
				s.Sub(s, minimal[q])
			}
		}
		minimal[p] = s
		total.Add(total, s)
	}

	return total
}

// sumWithPeriod sums the n digit numbers in [lo, hi] built by repeating a
// block of p digits. Such a number is block * (1 + 10^p + 10^2p + ...).
func sumWithPeriod(n, p int, lo, hi int64) *big.Int {
	m := int64(1)
	for i := 1; i < n/p; i++ {
		m = m*pow10(p) + 1
	}

	from := max(pow10(p-1), ceilDiv(lo, m))
	to := min(pow10(p)-1, hi/m)
	if from > to || lo > hi {
		return new(big.Int)
	}

	// m * (from + to) * count / 2
	sum := big.NewInt(from + to)
	sum.Mul(sum, big.NewInt(to-from+1))
	sum.Rsh(sum, 1)

	return sum.Mul(sum, big.NewInt(m))
}

func clampLength(r idRange, n int) (int64, int64) {
	return max(r.lower, pow10(n-1)), min(r.upper, pow10(n)-1)
}

func divisors(n int) []int {
	var out []int
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}

	return out
}

func digits(v int64) int {
	return len(strconv.FormatInt(v, 10))
}

func pow10(n int) int64 {
	v := int64(1)
	for range n {
		v *= 10
	}

	return v
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
