// SPDX-License-Identifier: MIT
// Package: shortpath/bellmanford
//
// regular.go - classic Bellman-Ford: |V|-1 relaxation passes plus a final
// negative-cycle scan.

package bellmanford

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/solver"
)

// RegularName is the Name() of Regular.
const RegularName = "Bellman-Ford (regular)"

// Regular is the pass-based Bellman-Ford solver.
//
// Each pass relaxes every canonical arc in insertion order; a pass with no
// improvement ends the loop early since the fixpoint is reached. After the
// passes one more scan detects negative cycles reachable from the source.
type Regular struct {
	state
}

// NewRegular returns a Regular solver over g.
// Returns core.ErrNilGraph when g is nil.
//
// Complexity: O(E) to build the arc list.
func NewRegular(g *core.Graph, opts ...solver.Option) (*Regular, error) {
	st, err := newState(g, opts)
	if err != nil {
		return nil, err
	}
	return &Regular{state: st}, nil
}

// Name implements solver.Solver.
func (r *Regular) Name() string { return RegularName }

// Solve computes distances from the source to every vertex.
//
// Errors:
//   - solver.ErrNoSource, core.ErrVertexNotFound for a bad source.
//   - solver.ErrNegativeCycle (wrapped with the offending edge) when an arc is
//     still relaxable after |V|-1 passes. Distances are then discarded.
//   - the context error when the configured context is done.
//
// Complexity: O(V·E) time, O(V) space.
func (r *Regular) Solve() error {
	start := time.Now()
	st := solver.Stats{Algorithm: RegularName, Vertices: r.g.Order(), Edges: r.g.Size()}

	err := r.run(&st)

	st.Duration = time.Since(start)
	r.opts.Observe(st, err)
	return err
}

func (r *Regular) run(st *solver.Stats) error {
	if _, err := r.begin(); err != nil {
		return err
	}

	n := r.g.Order()
	for pass := 1; pass < n; pass++ {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}
		st.Iterations++

		updated := false
		for _, a := range r.arcs {
			if r.relax(a.u, a.v, a.w) {
				st.Relaxations++
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	for _, a := range r.arcs {
		if r.relaxable(a) {
			return fmt.Errorf("%w: edge %s→%s weight=%d still relaxable after %d passes",
				solver.ErrNegativeCycle, r.g.VertexAt(a.u).Name, r.g.VertexAt(a.v).Name, a.w, st.Iterations)
		}
	}

	r.solved = true
	return nil
}

// PrintPath writes the current path, e.g. "A -(2)> B -(3)> C".
func (r *Regular) PrintPath(w io.Writer) error { return solver.Print(w, r) }

// Export hands the graph and the current path to e.
func (r *Regular) Export(e solver.Exporter) (string, error) { return solver.ExportWith(r, e) }

var _ solver.Solver = (*Regular)(nil)
