package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/solver"
)

// factory builds a solver under test.
type factory func(g *core.Graph, opts ...solver.Option) (solver.Solver, error)

func newRegular(g *core.Graph, opts ...solver.Option) (solver.Solver, error) {
	return bellmanford.NewRegular(g, opts...)
}

func newWorklist(g *core.Graph, opts ...solver.Option) (solver.Solver, error) {
	return bellmanford.NewWorklist(g, opts...)
}

// vertex looks up name in g or fails the test.
func vertex(t testing.TB, g *core.Graph, name string) core.Vertex {
	t.Helper()
	v, ok := g.VertexByName(name)
	require.True(t, ok, "vertex %q not in graph", name)
	return v
}

// statsRecorder keeps every Stats passed to OnSolve.
type statsRecorder struct {
	stats []solver.Stats
	errs  []error
}

func (r *statsRecorder) OnSolve(st solver.Stats, err error) {
	r.stats = append(r.stats, st)
	r.errs = append(r.errs, err)
}

// lectureDistances are the shortest distances from A in builder.Lecture().
var lectureDistances = map[string]int64{
	"A": 0, "B": 2, "C": 5, "D": 12, "E": 8, "F": 6, "G": 9, "H": 10, "I": 11,
	"J": 10, "K": 11, "L": 7, "M": 8, "N": 15, "O": 2, "P": 14, "R": 10, "S": 6,
}

const lecturePathAS = "A -(2)> B -(3)> C -(1)> F -(2)> E -(1)> G -(2)> I -(-1)> J -(5)> N -(-9)> S"
