// Package core provides the immutable graph model shared by every shortest-path
// solver in this module.
//
// The Graph G = (V,E) is a directed multigraph with signed int64 weights:
//
//   - Vertex{ID, Name}: ID is the identity, Name is for display only.
//   - Edge{ID, From, To, Weight}: weights may be negative; parallel edges are
//     allowed and lookups resolve to the first one declared.
//   - Graph: ordered vertices + ordered edges, validated once by NewGraph
//     (every endpoint must be a declared vertex) and never mutated afterwards.
//
// Why immutable?
//
//   - Solvers keep dense ordinal-indexed arrays (distances, predecessors,
//     next hops) and rely on the vertex order never changing under them.
//   - Sharing one *Graph between several solvers needs no locking.
//
// Construction:
//
//	// From explicit sequences (IDs chosen by the caller):
//	g, err := core.NewGraph(vertices, edges)
//
//	// Or incrementally by name (IDs assigned 0,1,2,...):
//	b := core.NewBuilder().Vertices("A", "B", "C")
//	b.Edge("A", "B", 2).Edge("B", "C", -1)
//	g, err := b.Build()
//
// Queries:
//
//	Order() / Size()                 // |V|, |E|
//	Vertices() / Edges()             // copies, declaration order
//	Ordinal(v) (int, error)          // dense position of v
//	EdgeBetween(u, v) (Edge, bool)   // first match in insertion order
//	Outgoing(u) []int                // edge IDs leaving ordinal u
//	Shadowed(e) bool                 // e hidden by an earlier parallel edge
//
// Errors:
//
//	ErrNilGraph        - nil *Graph handed to a consumer.
//	ErrEmptyVertexName - vertex without a display name.
//	ErrDuplicateVertex - two vertices with one ID (or one name, in Builder).
//	ErrVertexNotFound  - vertex is not a member of the graph.
//	ErrUnknownEndpoint - edge endpoint missing from the vertex sequence.
package core
