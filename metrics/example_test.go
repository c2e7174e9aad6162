package metrics_test

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/floydwarshall"
	"github.com/katalvlaran/shortpath/metrics"
	"github.com/katalvlaran/shortpath/solver"
)

// ExampleRecorder counts two Floyd-Warshall solves.
func ExampleRecorder() {
	rec := metrics.NewRecorder("demo")
	g := builder.MustBuildGraph(nil, builder.LectureSmall())

	s, _ := floydwarshall.NewSolver(g, solver.WithHooks(rec))
	s.From(g.VertexAt(0))
	_ = s.Solve()
	_ = s.Solve()

	fmt.Println(testutil.ToFloat64(rec.SolvesTotal.WithLabelValues(floydwarshall.Name, metrics.OutcomeOK)))
	// Output: 2
}
