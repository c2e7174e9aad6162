// SPDX-License-Identifier: MIT
// Package: shortpath/floydwarshall
//
// solver.go - dense all-pairs closure with next-hop reconstruction.
//
// Contract:
//   - dist[i*n+j] is meaningful only while reach[i*n+j] is true.
//   - next[i*n+j] is the first hop of the best known i→j walk, -1 when none.
//   - Only the first edge of a parallel group seeds the tables.
//   - The diagonal starts at 0 with no hop; self-loops never seed it.

package floydwarshall

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/solver"
)

// Name is the Name() of Solver.
const Name = "Floyd-Warshall"

const noHop = -1

// Solver is the Floyd-Warshall implementation of solver.Solver.
// It is not safe for concurrent use.
type Solver struct {
	solver.Endpoints

	g    *core.Graph
	opts solver.Options
	n    int

	dist  []int64
	reach []bool
	next  []int

	loop     int   // first negative self-loop seen by init, noHop if none
	computed bool  // tables hold the closure
	cycle    error // ErrNegativeCycle found by the diagonal check, if enabled
	src      int
	solved   bool
}

// NewSolver returns a Solver over g. The tables are allocated here and
// filled on the first Solve. Returns core.ErrNilGraph when g is nil.
//
// Complexity: O(V²) memory.
func NewSolver(g *core.Graph, opts ...solver.Option) (*Solver, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	n := g.Order()
	return &Solver{
		g:     g,
		opts:  solver.Apply(opts...),
		n:     n,
		dist:  make([]int64, n*n),
		reach: make([]bool, n*n),
		next:  make([]int, n*n),
		src:   noHop,
	}, nil
}

// Name implements solver.Solver.
func (s *Solver) Name() string { return Name }

// Graph returns the graph the solver was built over.
func (s *Solver) Graph() *core.Graph { return s.g }

// From sets the source. Earlier query results are discarded but the
// all-pairs tables are kept.
func (s *Solver) From(start core.Vertex) {
	s.SetSource(start)
	s.solved = false
}

// To sets the target.
func (s *Solver) To(finish core.Vertex) { s.SetTarget(finish) }

// Solve validates the source and, on first use, computes the closure.
//
// Errors:
//   - solver.ErrNoSource, core.ErrVertexNotFound for a bad source.
//   - solver.ErrNegativeCycle with WithCycleCheck() when some vertex lies on a
//     negative cycle.
//   - the context error when the configured context is done mid-closure; the
//     tables are then recomputed on the next Solve.
//
// Complexity: O(V³) on the first call, O(1) afterwards.
func (s *Solver) Solve() error {
	start := time.Now()
	st := solver.Stats{Algorithm: Name, Vertices: s.n, Edges: s.g.Size()}

	err := s.run(&st)

	st.Duration = time.Since(start)
	s.opts.Observe(st, err)
	return err
}

func (s *Solver) run(st *solver.Stats) error {
	s.solved = false
	src, ok := s.Source()
	if !ok {
		return solver.ErrNoSource
	}
	i, err := s.g.Ordinal(src)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}

	if !s.computed {
		if err := s.compute(st); err != nil {
			return err
		}
	}
	if s.cycle != nil {
		return s.cycle
	}

	s.src = i
	s.solved = true
	return nil
}

// init seeds the tables from the canonical edges.
func (s *Solver) init() {
	n := s.n
	for i := range s.dist {
		s.dist[i] = 0
		s.reach[i] = false
		s.next[i] = noHop
	}
	for i := 0; i < n; i++ {
		s.reach[i*n+i] = true
	}
	s.loop = noHop
	for _, e := range s.g.Edges() {
		if s.g.Shadowed(e) {
			continue
		}
		u, _ := s.g.Ordinal(e.From)
		v, _ := s.g.Ordinal(e.To)
		idx := u*n + v
		if u == v {
			if e.Weight < 0 && s.loop == noHop {
				s.loop = u
			}
			continue
		}
		s.dist[idx] = e.Weight
		s.reach[idx] = true
		s.next[idx] = v
	}
}

// compute runs the k → i → j closure over the flat tables.
func (s *Solver) compute(st *solver.Stats) error {
	s.init()

	n := s.n
	dist, reach, next := s.dist, s.reach, s.next

	var (
		k, i, j      int
		baseK, baseI int
		ik, cand     int64
	)
	for k = 0; k < n; k++ {
		if err := s.opts.Ctx.Err(); err != nil {
			return err
		}
		st.Iterations++
		baseK = k * n

		for i = 0; i < n; i++ {
			baseI = i * n
			if !reach[baseI+k] {
				continue
			}
			ik = dist[baseI+k]

			for j = 0; j < n; j++ {
				if !reach[baseK+j] {
					continue
				}
				cand = ik + dist[baseK+j]
				if reach[baseI+j] && cand >= dist[baseI+j] {
					continue
				}
				dist[baseI+j] = cand
				reach[baseI+j] = true
				next[baseI+j] = next[baseI+k]
				st.Relaxations++
			}
		}
	}
	s.computed = true

	if s.opts.CycleCheck {
		if s.loop != noHop {
			s.cycle = fmt.Errorf("%w: negative self-loop on %s", solver.ErrNegativeCycle, s.g.VertexAt(s.loop).Name)
			return nil
		}
		for v := 0; v < n; v++ {
			if dist[v*n+v] < 0 {
				s.cycle = fmt.Errorf("%w: dist(%s,%s)=%d",
					solver.ErrNegativeCycle, s.g.VertexAt(v).Name, s.g.VertexAt(v).Name, dist[v*n+v])
				break
			}
		}
	}
	return nil
}

// Distance returns the shortest distance from the source to v.
// The boolean is false when v is unreachable, unknown, or nothing was solved.
func (s *Solver) Distance(v core.Vertex) (int64, bool) {
	if !s.solved {
		return 0, false
	}
	t, err := s.g.Ordinal(v)
	if err != nil {
		return 0, false
	}
	return s.at(s.src, t)
}

// Between returns the shortest distance between any two vertices once the
// closure has been computed by a successful Solve.
func (s *Solver) Between(from, to core.Vertex) (int64, bool) {
	if !s.computed || s.cycle != nil {
		return 0, false
	}
	i, err := s.g.Ordinal(from)
	if err != nil {
		return 0, false
	}
	j, err := s.g.Ordinal(to)
	if err != nil {
		return 0, false
	}
	return s.at(i, j)
}

func (s *Solver) at(i, j int) (int64, bool) {
	idx := i*s.n + j
	if !s.reach[idx] {
		return 0, false
	}
	return s.dist[idx], true
}

// EdgesOnPath follows next hops from the source to the target and converts
// the walk into edges. An unreachable target yields an empty slice.
func (s *Solver) EdgesOnPath() ([]core.Edge, error) {
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
	if !s.reach[s.src*s.n+t] {
		return []core.Edge{}, nil
	}

	path := []core.Vertex{s.g.VertexAt(s.src)}
	for u := s.src; u != t; {
		u = s.next[u*s.n+t]
		if u == noHop || len(path) > s.n {
			return nil, fmt.Errorf("%w: next-hop walk to %s", solver.ErrCorruptPath, tgt.Name)
		}
		path = append(path, s.g.VertexAt(u))
	}

	return solver.EdgesAlong(s.g, path)
}

// PrintPath writes the current path, e.g. "A -(2)> B -(3)> C".
func (s *Solver) PrintPath(w io.Writer) error { return solver.Print(w, s) }

// Export hands the graph and the current path to e.
func (s *Solver) Export(e solver.Exporter) (string, error) { return solver.ExportWith(s, e) }

var _ solver.Solver = (*Solver)(nil)
