package metrics_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/metrics"
	"github.com/katalvlaran/shortpath/solver"
)

func TestRecorder_CountsSolves(t *testing.T) {
	rec := metrics.NewRecorder("test")
	g := builder.MustBuildGraph(nil, builder.Lecture())

	r, err := bellmanford.NewRegular(g, solver.WithHooks(rec))
	require.NoError(t, err)
	r.From(g.VertexAt(0))
	require.NoError(t, r.Solve())
	require.NoError(t, r.Solve())

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.SolvesTotal.WithLabelValues(bellmanford.RegularName, metrics.OutcomeOK)))
	assert.Positive(t, testutil.ToFloat64(rec.RelaxationsTotal.WithLabelValues(bellmanford.RegularName)))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.SolveDuration))
}

func TestRecorder_NegativeCycleOutcome(t *testing.T) {
	rec := metrics.NewRecorder("")
	g := builder.MustBuildGraph([]builder.BuilderOption{builder.WithConstantWeight(-2)}, builder.Cycle(3))

	r, err := bellmanford.NewRegular(g, solver.WithHooks(rec))
	require.NoError(t, err)
	r.From(g.VertexAt(0))
	require.ErrorIs(t, r.Solve(), solver.ErrNegativeCycle)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.SolvesTotal.WithLabelValues(bellmanford.RegularName, metrics.OutcomeNegativeCycle)))
}

func TestOutcome(t *testing.T) {
	tests := map[error]string{
		nil:                     metrics.OutcomeOK,
		solver.ErrNegativeCycle: metrics.OutcomeNegativeCycle,
		fmt.Errorf("x: %w", solver.ErrIterationLimit): metrics.OutcomeIterationLimit,
		context.Canceled:         metrics.OutcomeCanceled,
		context.DeadlineExceeded: metrics.OutcomeCanceled,
		solver.ErrNoSource:       metrics.OutcomeError,
	}
	for err, want := range tests {
		assert.Equal(t, want, metrics.Outcome(err), "%v", err)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := metrics.NewRecorder("shortpath")
	rec.OnSolve(solver.Stats{Algorithm: "x", Vertices: 3, Relaxations: 4}, nil)

	path := filepath.Join(t.TempDir(), "shortpath.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `shortpath_solves_total{algorithm="x",outcome="ok"} 1`)
	assert.Contains(t, string(data), `shortpath_relaxations_total{algorithm="x"} 4`)
}
