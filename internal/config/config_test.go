package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.ConfigEnvVar, "")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.AlgorithmRegular, cfg.Solver.Algorithm)
	assert.Zero(t, cfg.Solver.MaxIterations)
	assert.False(t, cfg.Solver.CycleCheck)
	assert.Equal(t, "shortpath", cfg.Metrics.Namespace)
	assert.Empty(t, cfg.Metrics.File)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shortpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  max_size: 50
solver:
  algorithm: worklist
  max_iterations: 1000
  cycle_check: true
`)
	cfg, err := config.Load(config.WithFile(path))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Log.MaxSize)
	assert.Equal(t, 3, cfg.Log.MaxBackups, "untouched keys keep defaults")
	assert.Equal(t, config.AlgorithmWorklist, cfg.Solver.Algorithm)
	assert.Equal(t, 1000, cfg.Solver.MaxIterations)
	assert.True(t, cfg.Solver.CycleCheck)
}

func TestLoad_FileFromEnv(t *testing.T) {
	path := writeFile(t, "solver:\n  algorithm: floyd-warshall\n")
	t.Setenv(config.ConfigEnvVar, path)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmFloyd, cfg.Solver.Algorithm)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "solver:\n  algorithm: worklist\n")
	t.Setenv("SHORTPATH_SOLVER_ALGORITHM", "floyd-warshall")
	t.Setenv("SHORTPATH_SOLVER_MAX_ITERATIONS", "42")
	t.Setenv("SHORTPATH_LOG_MAX_BACKUPS", "9")
	t.Setenv("SHORTPATH_METRICS_FILE", "/tmp/x.prom")

	cfg, err := config.Load(config.WithFile(path))
	require.NoError(t, err)

	assert.Equal(t, config.AlgorithmFloyd, cfg.Solver.Algorithm)
	assert.Equal(t, 42, cfg.Solver.MaxIterations)
	assert.Equal(t, 9, cfg.Log.MaxBackups)
	assert.Equal(t, "/tmp/x.prom", cfg.Metrics.File)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.WithFile(filepath.Join(t.TempDir(), "nope.yaml")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeFile(t, "solver:\n  algorithm: dijkstra\n  max_iterations: -1\nlog:\n  level: loud\n")
	_, err := config.Load(config.WithFile(path))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "dijkstra")
	assert.Contains(t, err.Error(), "max_iterations")
	assert.Contains(t, err.Error(), "loud")
}

func TestValidate(t *testing.T) {
	ok := config.Config{
		Log:    config.LogConfig{Level: "warn"},
		Solver: config.SolverConfig{Algorithm: config.AlgorithmWorklist},
	}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Log.MaxAge = -1
	require.ErrorIs(t, bad.Validate(), config.ErrInvalid)
}

func TestIsAlgorithm(t *testing.T) {
	for _, a := range config.Algorithms {
		assert.True(t, config.IsAlgorithm(a))
	}
	assert.False(t, config.IsAlgorithm(""))
	assert.False(t, config.IsAlgorithm("Regular"))
}
