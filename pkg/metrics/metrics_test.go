package metrics_test

import (
	"advent/internal/benchmark"
	"advent/internal/input"
	"advent/internal/solution"
	"advent/pkg/metrics"
	"context"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}

	return byName
}

func TestNewMeterProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("test.calls")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families := gather(t, reg)
	require.Contains(t, families, "test_calls_total")
	require.InDelta(t, 3.0, families["test_calls_total"].GetMetric()[0].GetCounter().GetValue(), 0)
}

type constant struct{}

func (constant) ReadInput(*input.Loader) error { return nil }
func (constant) Part1() any                    { return 1 }
func (constant) Part2() any                    { return 2 }

func TestNewMeterProvider_SolveDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	suite := benchmark.Suite{
		Year: 2022,
		Runs: 1,
		Definitions: []solution.Definition{
			{Year: 2022, Day: 1, New: func() solution.Solver { return constant{} }},
		},
	}
	_, err = suite.Execute(context.Background(), benchmark.Deps{
		Inputs:         fstest.MapFS{"2022/day_01.txt": {Data: []byte("x\n")}},
		Answers:        fstest.MapFS{},
		MeterProvider:  mp,
		TracerProvider: noop.NewTracerProvider(),
	})
	require.NoError(t, err)

	families := gather(t, reg)
	require.Contains(t, families, "aoc_solve_duration_seconds")
	require.Equal(t, dto.MetricType_HISTOGRAM, families["aoc_solve_duration_seconds"].GetType())
	// one series per phase
	require.Len(t, families["aoc_solve_duration_seconds"].GetMetric(), 3)
}

func TestDefaultBucketsAscending(t *testing.T) {
	for i := 1; i < len(metrics.DefaultBuckets); i++ {
		require.Greater(t, metrics.DefaultBuckets[i], metrics.DefaultBuckets[i-1])
	}
}
