package benchmark_test

import (
	"advent/internal/benchmark"
	"advent/internal/input"
	"advent/internal/solution"
	"advent/pkg/domain"
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// sum adds the numbers of the input; part 2 doubles the sum.
type sum struct {
	values []int
	calls  *int
}

func (s *sum) ReadInput(in *input.Loader) error {
	values, err := in.Ints()
	if err != nil {
		return err
	}
	s.values = values

	return nil
}

func (s *sum) Part1() any {
	if s.calls != nil {
		*s.calls++
	}
	total := 0
	for _, v := range s.values {
		total += v
	}

	return total
}

func (s *sum) Part2() any { return s.Part1().(int) * 2 }

type panicky struct{}

func (panicky) ReadInput(*input.Loader) error { return nil }
func (panicky) Part1() any                    { panic("boom") }
func (panicky) Part2() any                    { return 0 }

type broken struct{}

func (broken) ReadInput(*input.Loader) error { return errors.New("bad input") }
func (broken) Part1() any                    { return 0 }
func (broken) Part2() any                    { return 0 }

func deps(t *testing.T) (benchmark.Deps, *sdkmetric.ManualReader, *tracetest.SpanRecorder) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() {
		_ = mp.Shutdown(context.Background())
		_ = tp.Shutdown(context.Background())
	})

	return benchmark.Deps{
		Inputs: fstest.MapFS{
			"2022/day_01.txt":       {Data: []byte("1\n2\n3\n")},
			"2022/day_01_large.txt": {Data: []byte("10\n20\n")},
			"2022/day_02.txt":       {Data: []byte("4\n")},
		},
		Answers: fstest.MapFS{
			"2022/day_01.properties": {Data: []byte("part1=6\npart2=12\n")},
			"2022/day_02.properties": {Data: []byte("part1=4\npart2=9\n")},
		},
		MeterProvider:  mp,
		TracerProvider: tp,
	}, reader, sr
}

func TestSuite_Execute(t *testing.T) {
	d, reader, sr := deps(t)
	calls := 0

	suite := benchmark.Suite{
		Year: 2022,
		Runs: 3,
		Definitions: []solution.Definition{
			{Year: 2022, Day: 1, Name: "Sum", New: func() solution.Solver { return &sum{calls: &calls} }, Part1Runs: 1},
			{Year: 2022, Day: 2, Name: "Wrong", New: func() solution.Solver { return &sum{} }},
			{Year: 2022, Day: 3, Name: "Missing", New: func() solution.Solver { return &sum{} }},
			{Year: 2022, Day: 4, Name: "Panic", New: func() solution.Solver { return panicky{} }},
			{Year: 2022, Day: 5, Name: "Broken", New: func() solution.Solver { return broken{} }},
		},
	}

	report, err := suite.Execute(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, 2022, report.Year)
	require.Equal(t, 3, report.Runs)
	require.Len(t, report.Days, 5)

	day1 := report.Days[0]
	require.Equal(t, domain.StatusValid, day1.Status)
	require.Equal(t, "6", day1.Part1Answer)
	require.Equal(t, "12", day1.Part2Answer)
	require.Equal(t, 3, day1.Preparation.Runs)
	require.Equal(t, 1, day1.Part1.Runs)
	require.Equal(t, 3, day1.Part2.Runs)
	// part 2 calls part 1 on every run
	require.Equal(t, 4, calls)
	require.Equal(t, "https://adventofcode.com/2022/day/1", day1.InstructionURI)
	require.Equal(t, "internal/years/y2022/day01.go", day1.SourceURI)

	require.Equal(t, domain.StatusInvalid, report.Days[1].Status)

	require.Equal(t, domain.StatusFailed, report.Days[2].Status)
	require.Contains(t, report.Days[2].Error, "not found")

	require.Equal(t, domain.StatusFailed, report.Days[3].Status)
	require.Equal(t, "boom", report.Days[3].Error)

	require.Equal(t, domain.StatusFailed, report.Days[4].Status)
	require.Equal(t, "bad input", report.Days[4].Error)

	require.Len(t, sr.Ended(), 5)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var histogramPoints uint64
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if h, ok := m.Data.(metricdata.Histogram[float64]); ok {
			for _, dp := range h.DataPoints {
				histogramPoints += dp.Count
			}
		}
	}
	// day 1: 3 preparations, 1 part 1, 3 part 2; day 2: 3 of each; day 4: 1 preparation
	require.Equal(t, uint64(3+1+3+3+3+3+1), histogramPoints)
}

func TestSuite_LargeInputAndUnknown(t *testing.T) {
	d, _, _ := deps(t)
	d.Answers = nil

	suite := benchmark.Suite{
		Year:        2022,
		Runs:        0,
		LargeInput:  true,
		Definitions: []solution.Definition{{Year: 2022, Day: 1, New: func() solution.Solver { return &sum{} }}},
	}

	report, err := suite.Execute(context.Background(), d)
	require.NoError(t, err)
	require.Equal(t, 1, report.Runs)
	require.Equal(t, "30", report.Days[0].Part1Answer)
	require.Equal(t, domain.StatusUnknown, report.Days[0].Status)
}

func TestSuite_Cancelled(t *testing.T) {
	d, _, _ := deps(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite := benchmark.Suite{
		Year:        2022,
		Runs:        1,
		Definitions: []solution.Definition{{Year: 2022, Day: 1, New: func() solution.Solver { return &sum{} }}},
	}

	report, err := suite.Execute(ctx, d)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, report.Days)
}
