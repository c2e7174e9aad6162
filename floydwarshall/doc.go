// Package floydwarshall provides an all-pairs shortest-path solver for
// directed graphs with possibly negative edge weights.
//
// The solver keeps three flat row-major |V|×|V| tables: distances, an explicit
// "reached" flag per pair and a next-hop table. They are filled once, on the
// first Solve, in the classic k → i → j order and reused for every later
// source/target pair; From and To never trigger recomputation.
//
// Path reconstruction follows next[u][target] from the source until the
// target is reached. A walk longer than |V| hops means the tables describe a
// negative cycle and is reported as solver.ErrCorruptPath.
//
// Negative cycles are not detected by default. With solver.WithCycleCheck()
// a negative diagonal entry after the closure is reported as
// solver.ErrNegativeCycle.
//
// Usage:
//
//	fw, _ := floydwarshall.NewSolver(g)
//	fw.From(a)
//	fw.To(p)
//	if err := fw.Solve(); err != nil { ... }
//	d, ok := fw.Between(x, y) // any pair, not only the source
//
// Complexity: O(V³) time, O(V²) memory.
package floydwarshall
