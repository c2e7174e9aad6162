// Package solver defines the contract shared by the shortest-path algorithms of
// this module, together with the pieces every implementation reuses.
//
// Overview:
//
//   - Solver: From / To / Solve, then Distance, EdgesOnPath, PrintPath, Export.
//     Calls are sequential and return nothing or an error; there is no fluent
//     chaining. ShortestPath wraps a whole query and returns an immutable Path.
//   - Exporter: renders (graph, path edges) as text, e.g. dot.Exporter.
//   - EdgesAlong: converts a source→target vertex sequence into edges, first
//     match per consecutive pair; a missing edge is ErrMissingEdge.
//   - FormatPath: the one-line report "A -(2)> B -(3)> C".
//
// Options (functional, shared by all solvers):
//
//   - WithLogger(*log.Logger): debug lines with timing; silent by default.
//   - WithHooks(Hooks): one OnSolve(Stats, error) call per Solve (see metrics.Recorder).
//   - WithMaxIterations(n): bound for the work-list loop; 0 means unbounded.
//   - WithCycleCheck(): negative-cycle detection where it is off by default.
//   - WithContext(ctx): cooperative cancellation of long solves.
//
// Instrumentation is observation only: logs and hooks never change a result.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrNoSource, ErrNoTarget, ErrNotSolved – call-order misuse.
//	ErrNegativeCycle                       – fatal, no distances are kept.
//	ErrIterationLimit                      – configured bound exceeded.
//	ErrMissingEdge, ErrCorruptPath         – broken bookkeeping, never swallowed.
//	ErrBadMaxIterations                    – panic value of WithMaxIterations(n<0).
//
// An unreachable target is not an error: EdgesOnPath returns an empty slice.
package solver
