// SPDX-License-Identifier: MIT
// Package: shortpath/bellmanford
//
// worklist.go - queue-driven Bellman-Ford that only revisits vertices whose
// distance changed.
//
// Limitation kept on purpose: with default options a negative cycle reachable
// from the source makes Solve loop forever. Callers that cannot rule such
// cycles out opt into WithMaxIterations, WithCycleCheck or WithContext.

package bellmanford

import (
	"fmt"
	"io"
	"time"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/solver"
)

// WorklistName is the Name() of Worklist.
const WorklistName = "Bellman-Ford (worklist)"

// ctxCheckInterval is the number of queue pops between context checks.
const ctxCheckInterval = 1024

// Worklist is the work-list (queue) optimized Bellman-Ford solver.
type Worklist struct {
	state

	// adj[u] lists the canonical arcs leaving u, built once at construction.
	adj [][]arc
}

// NewWorklist returns a Worklist solver over g. Adjacency lists and the
// first-match weights are precomputed here, once.
// Returns core.ErrNilGraph when g is nil.
//
// Complexity: O(V + E).
func NewWorklist(g *core.Graph, opts ...solver.Option) (*Worklist, error) {
	st, err := newState(g, opts)
	if err != nil {
		return nil, err
	}
	adj := make([][]arc, g.Order())
	for _, a := range st.arcs {
		adj[a.u] = append(adj[a.u], a)
	}
	return &Worklist{state: st, adj: adj}, nil
}

// Name implements solver.Solver.
func (w *Worklist) Name() string { return WorklistName }

// Solve seeds the queue with the source and relaxes the arcs of popped
// vertices until the queue drains. A vertex is never queued twice at once.
//
// Errors:
//   - solver.ErrNoSource, core.ErrVertexNotFound for a bad source.
//   - solver.ErrIterationLimit with WithMaxIterations(n) after n pops.
//   - solver.ErrNegativeCycle with WithCycleCheck() once some vertex's best
//     walk uses |V| arcs, which can only happen through a negative cycle.
//   - the context error when the configured context is done.
//
// Complexity: O(V·E) worst case, usually far less.
func (w *Worklist) Solve() error {
	start := time.Now()
	st := solver.Stats{Algorithm: WorklistName, Vertices: w.g.Order(), Edges: w.g.Size()}

	err := w.run(&st)

	st.Duration = time.Since(start)
	w.opts.Observe(st, err)
	return err
}

func (w *Worklist) run(st *solver.Stats) error {
	src, err := w.begin()
	if err != nil {
		return err
	}

	n := w.g.Order()
	var hops []int // arcs on the current best walk, only with CycleCheck
	if w.opts.CycleCheck {
		hops = make([]int, n)
	}

	queue := []int{src}
	queued := new(bit.Set).Add(src)
	limit := w.opts.MaxIterations

	for len(queue) > 0 {
		if limit > 0 && st.Iterations >= limit {
			return fmt.Errorf("%w: %d pops, %d vertices still queued", solver.ErrIterationLimit, st.Iterations, len(queue))
		}
		if st.Iterations%ctxCheckInterval == 0 {
			if err := w.opts.Ctx.Err(); err != nil {
				return err
			}
		}

		v := queue[0]
		queue = queue[1:]
		queued.Delete(v)
		st.Iterations++

		for _, a := range w.adj[v] {
			if !w.relax(v, a.v, a.w) {
				continue
			}
			st.Relaxations++
			if hops != nil {
				hops[a.v] = hops[v] + 1
				if hops[a.v] >= n {
					return fmt.Errorf("%w: best walk to %s uses %d arcs",
						solver.ErrNegativeCycle, w.g.VertexAt(a.v).Name, hops[a.v])
				}
			}
			if !queued.Contains(a.v) {
				queue = append(queue, a.v)
				queued.Add(a.v)
			}
		}
	}

	w.solved = true
	return nil
}

// PrintPath writes the current path, e.g. "A -(2)> B -(3)> C".
func (w *Worklist) PrintPath(out io.Writer) error { return solver.Print(out, w) }

// Export hands the graph and the current path to e.
func (w *Worklist) Export(e solver.Exporter) (string, error) { return solver.ExportWith(w, e) }

var _ solver.Solver = (*Worklist)(nil)
