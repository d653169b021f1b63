package api_test

import (
	"advent/internal/api"
	"advent/internal/benchmark"
	"advent/internal/input"
	"advent/internal/solution"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type count struct{ lines []string }

func (c *count) ReadInput(in *input.Loader) error {
	lines, err := in.Lines()
	c.lines = lines

	return err
}

func (c *count) Part1() any { return len(c.lines) }
func (c *count) Part2() any { return len(c.lines) * 10 }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	registry := solution.NewRegistry()
	registry.Register(solution.Definition{Year: 2023, Day: 1, Name: "Count", New: func() solution.Solver { return &count{} }})
	registry.Register(solution.Definition{Year: 2023, Day: 2, Name: "Missing", New: func() solution.Solver { return &count{} }})

	blogDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(blogDir, "index.html"), []byte("<h1>blog</h1>"), 0o600))
	reportDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(reportDir, "2023-report.json"), []byte(`{"year":2023}`), 0o600))

	mp := sdkmetric.NewMeterProvider()
	srv, err := api.NewServer(api.Deps{
		Registry: registry,
		Benchmark: benchmark.Deps{
			Inputs:        fstest.MapFS{"2023/day_01.txt": {Data: []byte("a\nb\nc\n")}},
			Answers:       fstest.MapFS{"2023/day_01.properties": {Data: []byte("part1=3\npart2=30\n")}},
			MeterProvider: mp,
		},
		Gatherer:      prometheus.NewRegistry(),
		MeterProvider: mp,
	}, api.Options{
		RequestTimeout: 10 * time.Second,
		MetricsPath:    "/metrics",
		BlogDir:        blogDir,
		ReportDir:      reportDir,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestServer_Years(t *testing.T) {
	ts := newServer(t)

	status, body := get(t, ts.URL+"/api/years")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"years":[{"year":2023,"days":[
		{"day":1,"name":"Count","instructionUri":"https://adventofcode.com/2023/day/1","sourceUri":"internal/years/y2023/day01.go"},
		{"day":2,"name":"Missing","instructionUri":"https://adventofcode.com/2023/day/2","sourceUri":"internal/years/y2023/day02.go"}
	]}]}`, body)
}

func TestServer_Run(t *testing.T) {
	ts := newServer(t)

	status, body := get(t, ts.URL+"/api/run?year=2023&day=1")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"part1Answer":"3"`)
	require.Contains(t, body, `"part2Answer":"30"`)
	require.Contains(t, body, `"status":"valid"`)

	status, body = get(t, ts.URL+"/api/run?year=2023&day=2")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `"status":"failed"`)
}

func TestServer_RunErrors(t *testing.T) {
	ts := newServer(t)

	status, body := get(t, ts.URL+"/api/run?year=2023")
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, "missing day parameter")

	status, _ = get(t, ts.URL+"/api/run?year=2023&day=x")
	require.Equal(t, http.StatusBadRequest, status)

	status, body = get(t, ts.URL+"/api/run?year=2019&day=1")
	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, body, `"code":"NOT_FOUND"`)
}

func TestServer_Static(t *testing.T) {
	ts := newServer(t)

	status, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "<h1>blog</h1>", body)

	status, body = get(t, ts.URL+"/reports/2023-report.json")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, `{"year":2023}`, body)

	status, _ = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, status)

	status, _ = get(t, ts.URL+"/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, status)
}
