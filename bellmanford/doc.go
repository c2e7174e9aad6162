// Package bellmanford provides single-source shortest paths on directed graphs
// whose edge weights may be negative.
//
// Overview:
//
//   - Regular: the classic algorithm. |V|-1 passes relax every edge in
//     insertion order (stopping early once a pass changes nothing), then a
//     final scan fails with solver.ErrNegativeCycle if any edge can still be
//     relaxed. Deterministic for a fixed edge order.
//   - Worklist: a FIFO queue holds the vertices whose distance recently
//     changed, seeded with the source. Popping v relaxes only v's outgoing
//     edges; improved heads are enqueued unless already queued. Faster on
//     average, same O(V·E) worst case.
//
// Distances carry an explicit "reached" flag instead of an infinity sentinel,
// so weights close to any magic constant can never overflow into a false path.
//
// Negative cycles:
//
//   - Regular always detects cycles reachable from the source.
//   - Worklist does not by default and loops forever on such a cycle. Opt in
//     with solver.WithCycleCheck(), bound it with solver.WithMaxIterations(n),
//     or cancel it with solver.WithContext(ctx).
//
// Parallel edges: only the first edge between two vertices takes part in
// relaxation, the same edge EdgesOnPath reports, so the reported distance
// always equals the summed weight of the reported edges.
//
// Usage:
//
//	s, err := bellmanford.NewRegular(g)
//	if err != nil { ... }
//	s.From(a)
//	s.To(z)
//	if err := s.Solve(); err != nil { ... }
//	edges, err := s.EdgesOnPath() // empty when z is unreachable
//	_ = s.PrintPath(os.Stdout)    // "A -(2)> B -(-1)> Z"
//
// Complexity:
//
//   - Time:  O(V·E) for both solvers.
//   - Space: O(V + E) (Worklist keeps adjacency lists).
//
// Thread safety: a solver instance is not safe for concurrent use. Several
// solvers may share one *core.Graph, which is immutable.
package bellmanford
