// Package bellmanford_test provides runnable examples for both solvers.
package bellmanford_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/solver"
)

// ExampleRegular solves the lecture graph from A and prints the path to S.
func ExampleRegular() {
	g := builder.MustBuildGraph(nil, builder.Lecture())
	a, _ := g.VertexByName("A")
	s, _ := g.VertexByName("S")

	r, err := bellmanford.NewRegular(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r.From(a)
	r.To(s)
	if err := r.Solve(); err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := r.Distance(s)
	fmt.Println("dist:", d)
	_ = r.PrintPath(os.Stdout)
	// Output:
	// dist: 6
	// A -(2)> B -(3)> C -(1)> F -(2)> E -(1)> G -(2)> I -(-1)> J -(5)> N -(-9)> S
}

// ExampleWorklist shows the opt-in cycle check of the work-list solver.
func ExampleWorklist() {
	g := core.NewBuilder().
		Vertices("A", "B", "C").
		Edge("A", "B", 1).
		Edge("B", "C", -2).
		Edge("C", "B", 1).
		MustBuild()
	a, _ := g.VertexByName("A")

	w, _ := bellmanford.NewWorklist(g, solver.WithCycleCheck())
	w.From(a)
	err := w.Solve()
	fmt.Println(errors.Is(err, solver.ErrNegativeCycle))
	// Output: true
}

// ExampleNewRegular_duplicateEdges shows that the first of two parallel
// edges is the one used.
func ExampleNewRegular_duplicateEdges() {
	g := builder.MustBuildGraph(nil, builder.LectureSmall())
	a, _ := g.VertexByName("A")
	d, _ := g.VertexByName("D")

	r, _ := bellmanford.NewRegular(g)
	p, err := solver.ShortestPath(r, a, d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p, "=", p.Weight())
	// Output: A -(5)> B -(-2)> C -(4)> D = 7
}
