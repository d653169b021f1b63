// Package benchmark runs registered solvers, measures every phase and
// validates the answers against the recorded ones.
package benchmark

import (
	"advent/internal/input"
	"advent/internal/solution"
	"advent/internal/validate"
	"advent/pkg/domain"
	"advent/pkg/logger"
	"advent/pkg/metrics"
	"advent/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "advent/internal/benchmark"

// Phases reported on the duration histogram.
const (
	PhasePreparation = "preparation"
	PhasePart1       = "part1"
	PhasePart2       = "part2"
)

// Deps holds the collaborators of a suite. Nil providers fall back to the
// global OpenTelemetry providers.
type Deps struct {
	Inputs  fs.FS
	Answers fs.FS

	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// Suite is a set of days of one year run with the same settings.
type Suite struct {
	Year        int
	Runs        int
	LargeInput  bool
	Definitions []solution.Definition
}

// Execute runs every day of the suite in order. A failing day is recorded and
// the suite continues; a cancelled context stops it between days and returns
// the days completed so far together with the context error.
func (s Suite) Execute(ctx context.Context, deps Deps) (domain.Report, error) {
	r, err := newRunner(deps)
	if err != nil {
		return domain.Report{}, err
	}

	runs := max(s.Runs, 1)
	report := domain.Report{Year: s.Year, Runs: runs, Days: make([]domain.DayResult, 0, len(s.Definitions))}
	for _, def := range s.Definitions {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("benchmark of %d interrupted: %w", s.Year, err)
		}

		report.Days = append(report.Days, r.day(ctx, def, runs, s.LargeInput))
	}

	return report, nil
}

type runner struct {
	deps     Deps
	tracer   trace.Tracer
	duration metric.Float64Histogram
	failures metric.Int64Counter
}

func newRunner(deps Deps) (*runner, error) {
	mp := deps.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := deps.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	meter := mp.Meter(instrumentationName)
	duration, err := meter.Float64Histogram("aoc.solve.duration",
		metric.WithDescription("Time spent in one phase of a puzzle solution."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}
	failures, err := meter.Int64Counter("aoc.solve.failures",
		metric.WithDescription("Days whose solver failed or produced a wrong answer."))
	if err != nil {
		return nil, fmt.Errorf("could not create failure counter: %w", err)
	}

	return &runner{deps: deps, tracer: tp.Tracer(instrumentationName), duration: duration, failures: failures}, nil
}

func (r *runner) day(ctx context.Context, def solution.Definition, runs int, large bool) (res domain.DayResult) {
	res = domain.DayResult{
		Year:           def.Year,
		Day:            def.Day,
		Name:           def.Name,
		InstructionURI: def.InstructionURI(),
		SourceURI:      def.SourcePath(),
	}
	attrs := []attribute.KeyValue{attribute.Int("year", def.Year), attribute.Int("day", def.Day)}

	ctx, span := r.tracer.Start(ctx, "solve", trace.WithAttributes(attrs...))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.Int("year", def.Year), zap.Int("day", def.Day))

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "solver panicked", zap.Any("panic", p), zap.ByteString("stack", debug.Stack()))
			res.Status = domain.StatusFailed
			res.Error = fmt.Sprint(p)
		}
		if res.Status != domain.StatusValid && res.Status != domain.StatusUnknown {
			r.failures.Add(ctx, 1, metric.WithAttributes(attrs...))
			span.SetStatus(codes.Error, string(res.Status))
		}
		span.SetAttributes(attribute.String("status", string(res.Status)))
	}()

	validator, err := r.validator(ctx, def)
	if err != nil {
		return r.fail(ctx, res, err)
	}

	part1Runs := limit(runs, def.Part1Runs)
	part2Runs := limit(runs, def.Part2Runs)
	var checks []error
	for run := 0; run < runs; run++ {
		solver := def.New()
		in := input.NewLoader(r.deps.Inputs, def.Year, def.Day)
		if large {
			in.UseLargeFile()
		}

		elapsed, err := measure(func() error { return solver.ReadInput(in) })
		if err != nil {
			return r.fail(ctx, res, err)
		}
		r.record(ctx, &res.Preparation, elapsed, attrs, PhasePreparation)

		if run < part1Runs {
			var answer any
			elapsed, _ = measure(func() error { answer = solver.Part1(); return nil })
			r.record(ctx, &res.Part1, elapsed, attrs, PhasePart1)
			if run == 0 {
				res.Part1Answer = validate.Format(answer)
				checks = append(checks, validator.Part1(ctx, answer))
			}
		}
		if run < part2Runs {
			var answer any
			elapsed, _ = measure(func() error { answer = solver.Part2(); return nil })
			r.record(ctx, &res.Part2, elapsed, attrs, PhasePart2)
			if run == 0 {
				res.Part2Answer = validate.Format(answer)
				checks = append(checks, validator.Part2(ctx, answer))
			}
		}

		logger.Debug(ctx, "finished run", zap.Int("run", run))
	}

	res.Status = status(checks...)
	logger.Info(ctx, "solved day",
		zap.String("name", def.Name),
		zap.String("part1", res.Part1Answer),
		zap.String("part2", res.Part2Answer),
		zap.String("status", string(res.Status)),
		zap.String("preparation", res.Preparation.Pretty()),
		zap.String("part1Time", res.Part1.Pretty()),
		zap.String("part2Time", res.Part2.Pretty()))

	return res
}

func (r *runner) validator(ctx context.Context, def solution.Definition) (*validate.Validator, error) {
	if r.deps.Answers == nil {
		return validate.New(def.Year, def.Day, nil), nil
	}

	return validate.Load(ctx, r.deps.Answers, def.Year, def.Day)
}

func (r *runner) fail(ctx context.Context, res domain.DayResult, err error) domain.DayResult {
	logger.Error(ctx, "solver failed", zap.Error(err))
	res.Status = domain.StatusFailed
	res.Error = err.Error()

	return res
}

func (r *runner) record(ctx context.Context, m *domain.Measurement, elapsed time.Duration, attrs []attribute.KeyValue, phase string) {
	m.Total += elapsed.Microseconds()
	m.Runs++
	r.duration.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(append(attrs[:len(attrs):len(attrs)], attribute.String("phase", phase))...))
}

func measure(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()

	return time.Since(start), err
}

func limit(runs, maxRuns int) int {
	if maxRuns > 0 && maxRuns < runs {
		return maxRuns
	}

	return runs
}

// status folds validation outcomes: any mismatch makes the day invalid, any
// missing answer makes it unknown.
func status(checks ...error) domain.Status {
	out := domain.StatusValid
	for _, err := range checks {
		switch {
		case err == nil:
		case errors.Is(err, serrors.ErrMismatch):
			return domain.StatusInvalid
		case errors.Is(err, serrors.ErrNoAnswer):
			out = domain.StatusUnknown
		default:
			return domain.StatusFailed
		}
	}

	return out
}
