package bellmanford_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	return builder.MustBuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(-10, 50)},
		builder.RandomDAG(300, 0.05),
	)
}

func benchmarkSolver(b *testing.B, mk factory) {
	g := benchGraph(b)
	sv, err := mk(g)
	if err != nil {
		b.Fatal(err)
	}
	src := g.VertexAt(0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sv.From(src)
		if err := sv.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRegular_RandomDAG300(b *testing.B)  { benchmarkSolver(b, newRegular) }
func BenchmarkWorklist_RandomDAG300(b *testing.B) { benchmarkSolver(b, newWorklist) }
