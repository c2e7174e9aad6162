// SPDX-License-Identifier: MIT
// Package: shortpath/solver
//
// path.go - vertex-sequence → edge-sequence conversion and the Path result.

package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/shortpath/core"
)

// EdgesAlong converts a source→target vertex sequence into its edges by
// sliding a window of two over consecutive vertices and taking the first
// matching edge of g. A pair with no edge is an invariant violation and
// returns ErrMissingEdge; it is never skipped.
//
// Sequences shorter than two vertices yield an empty, non-nil slice.
func EdgesAlong(g *core.Graph, vertices []core.Vertex) ([]core.Edge, error) {
	if len(vertices) < 2 {
		return []core.Edge{}, nil
	}
	edges := make([]core.Edge, 0, len(vertices)-1)
	for i := 0; i+1 < len(vertices); i++ {
		e, ok := g.EdgeBetween(vertices[i], vertices[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: %s→%s", ErrMissingEdge, vertices[i].Name, vertices[i+1].Name)
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// FormatPath renders edges as "A -(2)> B -(3)> C". An empty sequence renders as "".
func FormatPath(edges []core.Edge) string {
	if len(edges) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, e := range edges {
		fmt.Fprintf(&sb, "%s -(%d)> ", e.From.Name, e.Weight)
	}
	sb.WriteString(edges[len(edges)-1].To.Name)
	return sb.String()
}

// Path is the immutable answer to one (source, target) query.
type Path struct {
	Source    core.Vertex
	Target    core.Vertex
	Edges     []core.Edge
	Reachable bool
}

// Weight returns the summed weight of the path edges.
func (p Path) Weight() int64 {
	var sum int64
	for _, e := range p.Edges {
		sum += e.Weight
	}
	return sum
}

// Vertices returns the visited vertices, source first. An unreachable path
// has no vertices; a trivial path (source == target) has one.
func (p Path) Vertices() []core.Vertex {
	if !p.Reachable {
		return nil
	}
	out := []core.Vertex{p.Source}
	for _, e := range p.Edges {
		out = append(out, e.To)
	}
	return out
}

// String implements fmt.Stringer using FormatPath.
func (p Path) String() string { return FormatPath(p.Edges) }

// ShortestPath runs one complete query on s: From, To, Solve, EdgesOnPath.
func ShortestPath(s Solver, from, to core.Vertex) (Path, error) {
	s.From(from)
	s.To(to)
	if err := s.Solve(); err != nil {
		return Path{}, err
	}
	edges, err := s.EdgesOnPath()
	if err != nil {
		return Path{}, err
	}
	_, reachable := s.Distance(to)
	return Path{Source: from, Target: to, Edges: edges, Reachable: reachable}, nil
}
