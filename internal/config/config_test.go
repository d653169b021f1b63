package config_test

import (
	"advent/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "input", cfg.InputDir)
	require.Equal(t, "answers", cfg.AnswerDir)
	require.Equal(t, 5, cfg.Benchmark.Runs)
	require.Equal(t, "markdown", cfg.Report.Format)
	require.Equal(t, "build/report", cfg.Report.Dir)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.False(t, cfg.History.Enabled)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
inputDir: /data/aoc/input
benchmark:
  runs: 20
report:
  format: json
history:
  enabled: true
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "/data/aoc/input", cfg.InputDir)
	require.Equal(t, 20, cfg.Benchmark.Runs)
	require.Equal(t, "json", cfg.Report.Format)
	require.True(t, cfg.History.Enabled)
	// untouched values keep their defaults
	require.Equal(t, "answers", cfg.AnswerDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AOC_INPUT_DIR", "/tmp/puzzles")
	t.Setenv("BENCHMARK_RUNS", "3")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, "/tmp/puzzles", cfg.InputDir)
	require.Equal(t, 3, cfg.Benchmark.Runs)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("benchmark: [not, a, map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
