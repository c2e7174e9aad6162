// SPDX-License-Identifier: MIT
// Package: shortpath/core
//
// graph.go - Graph construction and read-only queries.
//
// Determinism:
//   - Vertices() and Edges() return declaration order.
//   - EdgeBetween resolves parallel edges to the first one declared.
// Concurrency:
//   - A Graph is never mutated after NewGraph returns, so every query is safe
//     for concurrent use without locks.

package core

import "fmt"

// NewGraph validates the vertex and edge sequences and returns an immutable Graph.
//
// Steps:
//  1. Reject empty names and duplicate vertex IDs.
//  2. Reject edges whose endpoints are not members of the vertex sequence.
//  3. Renumber Edge.ID to the insertion ordinal and re-bind endpoints to the
//     declared vertices (so names always agree with the vertex sequence).
//  4. Build the dense first-edge table and the outgoing adjacency lists.
//
// The input slices are copied; later changes to them do not affect the Graph.
//
// Complexity: O(V² + E) time for the dense first-edge table, O(V² + E) space.
func NewGraph(vertices []Vertex, edges []Edge) (*Graph, error) {
	n := len(vertices)
	g := &Graph{
		vertices: make([]Vertex, n),
		edges:    make([]Edge, 0, len(edges)),
		index:    make(map[int]int, n),
		first:    make([]int, n*n),
		out:      make([][]int, n),
	}

	for i, v := range vertices {
		if v.Name == "" {
			return nil, fmt.Errorf("vertex #%d: %w", v.ID, ErrEmptyVertexName)
		}
		if _, dup := g.index[v.ID]; dup {
			return nil, fmt.Errorf("vertex #%d (%s): %w", v.ID, v.Name, ErrDuplicateVertex)
		}
		g.index[v.ID] = i
		g.vertices[i] = v
	}
	for i := range g.first {
		g.first[i] = -1
	}

	for i, e := range edges {
		u, ok := g.index[e.From.ID]
		if !ok {
			return nil, fmt.Errorf("edge #%d %s→%s: from: %w", i, e.From.Name, e.To.Name, ErrUnknownEndpoint)
		}
		v, ok := g.index[e.To.ID]
		if !ok {
			return nil, fmt.Errorf("edge #%d %s→%s: to: %w", i, e.From.Name, e.To.Name, ErrUnknownEndpoint)
		}

		id := len(g.edges)
		g.edges = append(g.edges, Edge{
			ID:     id,
			From:   g.vertices[u],
			To:     g.vertices[v],
			Weight: e.Weight,
		})
		if g.first[u*n+v] < 0 {
			g.first[u*n+v] = id
		}
		g.out[u] = append(g.out[u], id)
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges, parallel edges included.
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns a copy of the vertex sequence in declaration order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Edges returns a copy of the edge sequence in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// HasVertex reports whether v (by ID) is a member of g.
func (g *Graph) HasVertex(v Vertex) bool {
	_, ok := g.index[v.ID]
	return ok
}

// Ordinal returns the dense position of v in the vertex sequence.
// Solvers use it to address their distance and predecessor arrays.
func (g *Graph) Ordinal(v Vertex) (int, error) {
	i, ok := g.index[v.ID]
	if !ok {
		return -1, fmt.Errorf("vertex #%d (%s): %w", v.ID, v.Name, ErrVertexNotFound)
	}
	return i, nil
}

// VertexAt returns the vertex at dense position i. It panics when i is out of range.
func (g *Graph) VertexAt(i int) Vertex { return g.vertices[i] }

// EdgeAt returns the edge with ID id. It panics when id is out of range.
func (g *Graph) EdgeAt(id int) Edge { return g.edges[id] }

// VertexByName returns the first vertex called name.
func (g *Graph) VertexByName(name string) (Vertex, bool) {
	for _, v := range g.vertices {
		if v.Name == name {
			return v, true
		}
	}
	return Vertex{}, false
}

// EdgeBetween returns the first edge from→to in insertion order.
// The boolean is false when no such edge exists or an endpoint is not a member.
func (g *Graph) EdgeBetween(from, to Vertex) (Edge, bool) {
	u, ok := g.index[from.ID]
	if !ok {
		return Edge{}, false
	}
	v, ok := g.index[to.ID]
	if !ok {
		return Edge{}, false
	}
	id := g.first[u*len(g.vertices)+v]
	if id < 0 {
		return Edge{}, false
	}
	return g.edges[id], true
}

// FirstEdgeID returns the ID of the first edge between dense ordinals u and v, or -1.
func (g *Graph) FirstEdgeID(u, v int) int { return g.first[u*len(g.vertices)+v] }

// Shadowed reports whether e is a parallel edge hidden by an earlier edge
// with the same endpoints. Lookups never resolve to a shadowed edge.
func (g *Graph) Shadowed(e Edge) bool {
	u, ok := g.index[e.From.ID]
	if !ok {
		return false
	}
	v := g.index[e.To.ID]
	return g.first[u*len(g.vertices)+v] != e.ID
}

// Outgoing returns the IDs of the edges leaving dense ordinal u, in insertion order.
// The returned slice must not be modified.
func (g *Graph) Outgoing(u int) []int { return g.out[u] }
