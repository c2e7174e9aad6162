// Package shortpath computes shortest paths on weighted directed graphs
// whose edge weights may be negative.
//
// 🚀 What is shortpath?
//
//	A small library plus a CLI built around one Solver contract:
//		• Graph model: immutable Vertex/Edge/Graph built through core.Builder
//		• Bellman-Ford, regular: |V|-1 passes and a negative-cycle scan
//		• Bellman-Ford, work-list: a FIFO of vertices whose distance changed
//		• Floyd-Warshall: all pairs, next-hop path reconstruction
//		• Exporters: Graphviz DOT (and SVG rendering), JSON/YAML/TOML documents
//		• Observation: debug logging and Prometheus hooks per solve
//
// ✨ Guarantees
//
//   - Distances carry a reached flag, never an infinity sentinel.
//   - The reported distance always equals the summed weight of the reported
//     edges, parallel edges included (first edge between two vertices wins).
//   - Negative cycles reachable from the source surface as
//     solver.ErrNegativeCycle (always for Regular, opt-in for the others).
//
// Under the hood:
//
//	core/          - Vertex, Edge, immutable Graph, Builder
//	solver/        - Solver & Exporter contracts, Path, options, errors
//	bellmanford/   - Regular and Worklist solvers
//	floydwarshall/ - all-pairs solver
//	builder/       - deterministic generators and the lecture fixtures
//	dot/           - DOT exporter, SVG rendering
//	graphio/       - graph documents on disk
//	metrics/       - Prometheus solver.Hooks
//	cmd/shortpath  - solve, export, generate, demo
//
// Quick ASCII example:
//
//	    A ──5──▶ B
//	    │        │-2
//	    4        ▼
//	    └──────▶ C ──4──▶ D      A→D costs 7 via B and C.
//
//	go install github.com/katalvlaran/shortpath/cmd/shortpath@latest
package shortpath
