// SPDX-License-Identifier: MIT
// Package: shortpath/solver
//
// solver.go - the Solver and Exporter contracts plus the endpoint state and
// reporting helpers every implementation shares.

package solver

import (
	"fmt"
	"io"

	"github.com/katalvlaran/shortpath/core"
)

// Solver computes shortest paths over one immutable graph.
//
// Call order: From, To (any order, any number of times), Solve, then queries.
// From discards earlier results; To does not. Queries made before a
// successful Solve return ErrNotSolved.
type Solver interface {
	// Name identifies the algorithm in reports and metrics.
	Name() string

	// Graph returns the graph the solver was built over.
	Graph() *core.Graph

	// From sets the source vertex and resets any computed state.
	From(start core.Vertex)

	// To sets the target vertex used by path queries.
	To(finish core.Vertex)

	// Solve runs the algorithm to fixpoint over the whole graph.
	Solve() error

	// Distance returns the shortest distance from the source to v and whether
	// v is reachable at all.
	Distance(v core.Vertex) (int64, bool)

	// EdgesOnPath reconstructs the source→target edge sequence.
	// An unreachable target yields an empty slice and a nil error.
	EdgesOnPath() ([]core.Edge, error)

	// PrintPath writes the current path as one arrow-chain line.
	PrintPath(w io.Writer) error

	// Export hands the graph and the current path to e.
	Export(e Exporter) (string, error)
}

// Exporter renders a graph together with a highlighted path.
type Exporter interface {
	Export(g *core.Graph, path []core.Edge) (string, error)
}

// ExporterFunc adapts a function to the Exporter interface.
type ExporterFunc func(g *core.Graph, path []core.Edge) (string, error)

// Export implements Exporter.
func (f ExporterFunc) Export(g *core.Graph, path []core.Edge) (string, error) { return f(g, path) }

// Endpoints holds the source/target pair of a solver. Implementations embed it.
type Endpoints struct {
	source, target       core.Vertex
	hasSource, hasTarget bool
}

// SetSource records v as the source.
func (p *Endpoints) SetSource(v core.Vertex) { p.source, p.hasSource = v, true }

// SetTarget records v as the target.
func (p *Endpoints) SetTarget(v core.Vertex) { p.target, p.hasTarget = v, true }

// Source returns the source and whether it was set.
func (p *Endpoints) Source() (core.Vertex, bool) { return p.source, p.hasSource }

// Target returns the target and whether it was set.
func (p *Endpoints) Target() (core.Vertex, bool) { return p.target, p.hasTarget }

// Print writes the path of s to w in the FormatPath notation, followed by a newline.
func Print(w io.Writer, s Solver) error {
	edges, err := s.EdgesOnPath()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, FormatPath(edges))
	return err
}

// ExportWith reconstructs the path of s and passes it, with the graph, to e.
func ExportWith(s Solver, e Exporter) (string, error) {
	edges, err := s.EdgesOnPath()
	if err != nil {
		return "", err
	}
	return e.Export(s.Graph(), edges)
}
