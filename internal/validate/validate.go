// Package validate checks computed answers against recorded ones. Recorded
// answers are stored per day in <year>/day_DD.properties with the keys
// part1 and part2, or part1_<case> and part2_<case> for example inputs.
package validate

import (
	"advent/pkg/logger"
	"advent/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

// Validator compares answers for one day.
type Validator struct {
	year    int
	day     int
	suffix  string
	answers *properties.Properties
}

// Load reads the answers of the given day from fsys. A missing file yields a
// validator without answers, so every check reports ErrNoAnswer.
func Load(ctx context.Context, fsys fs.FS, year, day int) (*Validator, error) {
	path := fmt.Sprintf("%d/day_%02d.properties", year, day)

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug(ctx, "no recorded answers", zap.String("path", path))

			return New(year, day, nil), nil
		}

		return nil, fmt.Errorf("could not read answers %s: %w", path, err)
	}

	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid answers file %s", path)
	}

	return &Validator{year: year, day: day, answers: p}, nil
}

// New returns a validator over an in-memory answer set.
func New(year, day int, answers map[string]string) *Validator {
	p := properties.NewProperties()
	if answers != nil {
		p = properties.LoadMap(answers)
	}

	return &Validator{year: year, day: day, answers: p}
}

// WithCase returns a validator reading the keys of an example case.
func (v *Validator) WithCase(name string) *Validator {
	c := *v
	c.suffix = "_" + name

	return &c
}

// Part1 validates the answer of part 1.
func (v *Validator) Part1(ctx context.Context, answer any) error {
	return v.Check(ctx, "part1"+v.suffix, answer)
}

// Part2 validates the answer of part 2.
func (v *Validator) Part2(ctx context.Context, answer any) error {
	return v.Check(ctx, "part2"+v.suffix, answer)
}

// Has reports whether an answer is recorded under key.
func (v *Validator) Has(key string) bool {
	_, ok := v.answers.Get(key)

	return ok
}

// Check compares answer with the value recorded under key.
func (v *Validator) Check(ctx context.Context, key string, answer any) error {
	expected, ok := v.answers.Get(key)
	if !ok {
		logger.Warn(ctx, "no recorded answer",
			zap.Int("year", v.year), zap.Int("day", v.day), zap.String("key", key), zap.Any("answer", answer))

		return serrors.With(serrors.ErrNoAnswer, "no answer recorded for %d day %d %s", v.year, v.day, key)
	}

	expected = strings.TrimSpace(expected)
	if Equal(expected, answer) {
		return nil
	}

	logger.Error(ctx, "answer mismatch",
		zap.Int("year", v.year), zap.Int("day", v.day), zap.String("key", key),
		zap.String("expected", expected), zap.String("actual", Format(answer)))

	return serrors.With(serrors.ErrMismatch, "%d day %d %s: expected %s, got %s", v.year, v.day, key, expected, Format(answer))
}

// Equal compares a recorded answer with a computed one. Numbers compare by
// value, everything else compares case-insensitively as text.
func Equal(expected string, answer any) bool {
	switch a := answer.(type) {
	case *big.Int:
		e, ok := new(big.Int).SetString(expected, 10)

		return ok && a != nil && e.Cmp(a) == 0
	case int:
		return equalInt(expected, int64(a))
	case int32:
		return equalInt(expected, int64(a))
	case int64:
		return equalInt(expected, a)
	case uint:
		return equalUint(expected, uint64(a))
	case uint32:
		return equalUint(expected, uint64(a))
	case uint64:
		return equalUint(expected, a)
	case string:
		return strings.EqualFold(expected, strings.TrimSpace(a))
	default:
		return strings.EqualFold(expected, Format(answer))
	}
}

// Format renders an answer the way it is recorded.
func Format(answer any) string {
	switch a := answer.(type) {
	case nil:
		return ""
	case *big.Int:
		if a == nil {
			return ""
		}

		return a.String()
	case string:
		return a
	default:
		return fmt.Sprint(answer)
	}
}

func equalInt(expected string, a int64) bool {
	e, err := strconv.ParseInt(expected, 10, 64)

	return err == nil && e == a
}

func equalUint(expected string, a uint64) bool {
	e, err := strconv.ParseUint(expected, 10, 64)

	return err == nil && e == a
}
