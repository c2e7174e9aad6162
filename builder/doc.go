// Package builder provides deterministic graph constructors for tests,
// benchmarks, examples and the `shortpath generate` command.
//
// The package follows a functional-options design:
//
//   - Constructor: a function that declares vertices and edges on a
//     *core.Builder using the resolved builderConfig.
//   - BuildGraph(bopts, cons...): resolves options once, runs every
//     constructor in order and returns the immutable *core.Graph.
//   - BuilderOption: WithSeed, WithRand, WithIDScheme, WithWeightFn and the
//     weight helpers (WithConstantWeight, WithUniformWeight, WithNormalWeight).
//
// Topologies:
//
//   - Path(n):        0→1→…→n-1.
//   - Cycle(n):       Path(n) plus the closing arc n-1→0.
//   - Complete(n):    every ordered pair i≠j.
//   - Grid(r, c):     right and down arcs of an r×c lattice; acyclic.
//   - RandomDAG(n,p): each forward pair i<j with probability p; acyclic, so
//     negative weights never create a negative cycle.
//   - Lecture():      the 18-vertex A..S reference graph with negative edges.
//   - LectureSmall(): A,B,C,D with a duplicated B→C edge.
//
// Vertex declarations are idempotent: composing Path(3) with Cycle(3) reuses
// vertices "0","1","2" instead of failing.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name;
// branch with errors.Is. Option constructors panic on meaningless values.
package builder
