// SPDX-License-Identifier: MIT
// Package: shortpath/core
//
// types.go - Vertex, Edge, Graph and the sentinel errors of the core package.
//
// Contract:
//   - Vertex identity is its ordinal ID; Name is display-only.
//   - Edge.ID is the insertion ordinal of the edge inside its Graph.
//   - A Graph is immutable once returned by NewGraph or Builder.Build.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph construction and lookups.
var (
	// ErrNilGraph indicates that a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexName indicates that a vertex was declared without a display name.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates two vertices sharing an ID (or, in Builder, a name).
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a vertex that is not
	// a member of the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnknownEndpoint indicates an edge whose endpoint is not in the vertex sequence.
	ErrUnknownEndpoint = errors.New("core: edge endpoint is not a graph vertex")
)

// Vertex is a node of the graph.
//
// ID uniquely identifies the vertex within its Graph. Two vertices are equal
// when their IDs are equal, whatever their names.
type Vertex struct {
	// ID is the unique ordinal identifier.
	ID int

	// Name is the human-readable label used by reports and exporters.
	Name string
}

// Equal reports whether v and o denote the same vertex.
func (v Vertex) Equal(o Vertex) bool { return v.ID == o.ID }

// String returns the vertex name.
func (v Vertex) String() string { return v.Name }

// Edge is a directed, weighted connection From→To. Weight may be negative.
type Edge struct {
	// ID is the insertion ordinal of this edge in its Graph (0-based).
	ID int

	// From is the tail vertex.
	From Vertex

	// To is the head vertex.
	To Vertex

	// Weight is the signed cost of traversing the edge.
	Weight int64
}

// String renders the edge as "A -(w)> B".
func (e Edge) String() string {
	return fmt.Sprintf("%s -(%d)> %s", e.From.Name, e.Weight, e.To.Name)
}

// Graph is an immutable directed multigraph with signed integer weights.
//
// Vertices and edges keep their declaration order. Lookups by vertex ID are
// O(1) through a dense index: every vertex is assigned the ordinal of its
// position in the vertex sequence, and solvers address their arrays by it.
type Graph struct {
	vertices []Vertex
	edges    []Edge

	// index maps Vertex.ID → position in vertices.
	index map[int]int

	// first[u*n+v] holds the ID of the first edge u→v in insertion order, or -1.
	first []int

	// out[u] lists the IDs of the edges leaving vertex ordinal u, in insertion order.
	out [][]int
}
