// SPDX-License-Identifier: MIT
// Package: shortpath/bellmanford
//
// state.go - distance/predecessor state shared by Regular and Worklist.
//
// Invariants:
//   - dist[v] is meaningful only while reached[v] is true (no infinity sentinel).
//   - dist[v] never increases during a solve.
//   - pred[v] is the last tail whose arc improved dist[v].

package bellmanford

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/solver"
)

// noVertex marks an absent predecessor.
const noVertex = -1

// arc is a canonical edge in dense-ordinal form. Parallel edges shadowed by
// an earlier edge with the same endpoints never become arcs, so relaxation and
// reconstruction always agree on the same first-match edge.
type arc struct {
	u, v int   // tail and head ordinals
	w    int64 // weight of the first matching edge
}

// state holds the mutable data of a single-source solve.
type state struct {
	solver.Endpoints

	g    *core.Graph
	opts solver.Options
	arcs []arc // canonical arcs in insertion order

	dist    []int64 // best-known distance per ordinal
	reached []bool  // distance is finite
	pred    []int   // predecessor ordinal, noVertex if none
	src     int     // source ordinal of the last Solve
	solved  bool
}

// newState validates g and builds the canonical arc list. O(E).
func newState(g *core.Graph, opts []solver.Option) (state, error) {
	if g == nil {
		return state{}, core.ErrNilGraph
	}
	n := g.Order()
	st := state{
		g:       g,
		opts:    solver.Apply(opts...),
		arcs:    make([]arc, 0, g.Size()),
		dist:    make([]int64, n),
		reached: make([]bool, n),
		pred:    make([]int, n),
		src:     noVertex,
	}
	for _, e := range g.Edges() {
		if g.Shadowed(e) {
			continue
		}
		u, _ := g.Ordinal(e.From) // endpoints are members by Graph invariant
		v, _ := g.Ordinal(e.To)
		st.arcs = append(st.arcs, arc{u: u, v: v, w: e.Weight})
	}
	return st, nil
}

// Graph returns the graph the solver was built over.
func (s *state) Graph() *core.Graph { return s.g }

// From sets the source and discards any previous result.
func (s *state) From(start core.Vertex) {
	s.SetSource(start)
	s.solved = false
}

// To sets the target. Computed distances stay valid.
func (s *state) To(finish core.Vertex) { s.SetTarget(finish) }

// begin validates the source and resets every array: dist = unreached,
// pred = none, dist[src] = 0. It returns the source ordinal.
func (s *state) begin() (int, error) {
	s.solved = false
	src, ok := s.Source()
	if !ok {
		return noVertex, solver.ErrNoSource
	}
	i, err := s.g.Ordinal(src)
	if err != nil {
		return noVertex, fmt.Errorf("source: %w", err)
	}
	for v := range s.dist {
		s.dist[v] = 0
		s.reached[v] = false
		s.pred[v] = noVertex
	}
	s.dist[i] = 0
	s.reached[i] = true
	s.src = i

	return i, nil
}

// relax tries to improve v through u with weight w.
// Unreached tails never relax anything.
func (s *state) relax(u, v int, w int64) bool {
	if !s.reached[u] {
		return false
	}
	cand := s.dist[u] + w
	if s.reached[v] && cand >= s.dist[v] {
		return false
	}
	s.dist[v] = cand
	s.reached[v] = true
	s.pred[v] = u

	return true
}

// relaxable reports whether a would still improve its head. Used by the
// final negative-cycle scan.
func (s *state) relaxable(a arc) bool {
	return s.reached[a.u] && (!s.reached[a.v] || s.dist[a.u]+a.w < s.dist[a.v])
}

// Distance returns the shortest distance from the source to v.
// The boolean is false when v is unreachable, unknown, or nothing was solved.
func (s *state) Distance(v core.Vertex) (int64, bool) {
	if !s.solved {
		return 0, false
	}
	i, err := s.g.Ordinal(v)
	if err != nil || !s.reached[i] {
		return 0, false
	}
	return s.dist[i], true
}

// EdgesOnPath walks predecessors from the target back to the source, reverses
// the sequence and converts it to edges. An unreachable target yields an
// empty slice.
func (s *state) EdgesOnPath() ([]core.Edge, error) {
	if !s.solved {
		return nil, solver.ErrNotSolved
	}
	tgt, ok := s.Target()
	if !ok {
		return nil, solver.ErrNoTarget
	}
	t, err := s.g.Ordinal(tgt)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if !s.reached[t] {
		return []core.Edge{}, nil
	}

	n := s.g.Order()
	path := []core.Vertex{s.g.VertexAt(t)}
	for cur := t; cur != s.src; {
		prev := s.pred[cur]
		if prev == noVertex || len(path) > n {
			return nil, fmt.Errorf("%w: predecessor chain from %s", solver.ErrCorruptPath, tgt.Name)
		}
		cur = prev
		path = append(path, s.g.VertexAt(cur))
	}
	slices.Reverse(path)

	return solver.EdgesAlong(s.g, path)
}
