// SPDX-License-Identifier: MIT
// Package: shortpath/core
//
// builder.go - name-keyed incremental construction of an immutable Graph.
//
// Policy:
//   - Vertices receive ordinal IDs 0,1,2,... in declaration order.
//   - The first error is sticky: later calls are no-ops and Build returns it.

package core

import "fmt"

// Builder accumulates vertices and edges by name and produces a Graph.
// A Builder is not safe for concurrent use.
type Builder struct {
	vertices []Vertex
	edges    []Edge
	byName   map[string]Vertex
	err      error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]Vertex)}
}

// Vertex declares a vertex called name and returns it.
// Declaring the same name twice records ErrDuplicateVertex.
func (b *Builder) Vertex(name string) Vertex {
	if b.err != nil {
		return Vertex{}
	}
	if name == "" {
		b.err = ErrEmptyVertexName
		return Vertex{}
	}
	if _, dup := b.byName[name]; dup {
		b.err = fmt.Errorf("vertex %q: %w", name, ErrDuplicateVertex)
		return Vertex{}
	}
	v := Vertex{ID: len(b.vertices), Name: name}
	b.vertices = append(b.vertices, v)
	b.byName[name] = v
	return v
}

// Lookup returns the vertex declared under name, if any.
func (b *Builder) Lookup(name string) (Vertex, bool) {
	v, ok := b.byName[name]
	return v, ok
}

// Err returns the first recorded error, or nil.
func (b *Builder) Err() error { return b.err }

// Vertices declares several vertices at once, in order.
func (b *Builder) Vertices(names ...string) *Builder {
	for _, name := range names {
		b.Vertex(name)
	}
	return b
}

// Edge appends the edge from→to with weight w. Both endpoints must have been
// declared; an unknown name records ErrUnknownEndpoint.
func (b *Builder) Edge(from, to string, w int64) *Builder {
	if b.err != nil {
		return b
	}
	u, ok := b.byName[from]
	if !ok {
		b.err = fmt.Errorf("edge %s→%s: %q: %w", from, to, from, ErrUnknownEndpoint)
		return b
	}
	v, ok := b.byName[to]
	if !ok {
		b.err = fmt.Errorf("edge %s→%s: %q: %w", from, to, to, ErrUnknownEndpoint)
		return b
	}
	b.edges = append(b.edges, Edge{From: u, To: v, Weight: w})
	return b
}

// Build validates the accumulated declarations and returns the Graph.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewGraph(b.vertices, b.edges)
}

// MustBuild is like Build but panics on error. Intended for fixtures.
func (b *Builder) MustBuild() *Graph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
