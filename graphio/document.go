// SPDX-License-Identifier: MIT
// Package: shortpath/graphio
//
// document.go - the on-disk schema and its conversion to and from core.Graph.

package graphio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors for document validation.
var (
	// ErrMixedIDs indicates that only some vertices carry an explicit id.
	ErrMixedIDs = errors.New("graphio: either all vertices or none must have an id")

	// ErrDuplicateName indicates two vertices with the same name.
	ErrDuplicateName = errors.New("graphio: duplicate vertex name")
)

// Document is the serialized form of a graph.
type Document struct {
	Name     string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Vertices []VertexDoc `json:"vertices" yaml:"vertices" toml:"vertices"`
	Edges    []EdgeDoc   `json:"edges" yaml:"edges" toml:"edges"`
}

// VertexDoc is one vertex entry.
type VertexDoc struct {
	ID   *int   `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

// EdgeDoc is one edge entry; endpoints are vertex names.
type EdgeDoc struct {
	From   string `json:"from" yaml:"from" toml:"from"`
	To     string `json:"to" yaml:"to" toml:"to"`
	Weight int64  `json:"weight" yaml:"weight" toml:"weight"`
}

// Graph validates d and builds the immutable graph it describes.
func (d Document) Graph() (*core.Graph, error) {
	withID := 0
	for _, v := range d.Vertices {
		if v.ID != nil {
			withID++
		}
	}
	if withID == 0 {
		b := core.NewBuilder()
		for _, v := range d.Vertices {
			b.Vertex(v.Name)
		}
		for _, e := range d.Edges {
			b.Edge(e.From, e.To, e.Weight)
		}
		return b.Build()
	}
	if withID != len(d.Vertices) {
		return nil, fmt.Errorf("%w: %d of %d", ErrMixedIDs, withID, len(d.Vertices))
	}

	vertices := make([]core.Vertex, len(d.Vertices))
	byName := make(map[string]core.Vertex, len(d.Vertices))
	for i, v := range d.Vertices {
		if _, dup := byName[v.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, v.Name)
		}
		vertices[i] = core.Vertex{ID: *v.ID, Name: v.Name}
		byName[v.Name] = vertices[i]
	}
	edges := make([]core.Edge, len(d.Edges))
	for i, e := range d.Edges {
		from, ok := byName[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %s→%s: %q: %w", e.From, e.To, e.From, core.ErrUnknownEndpoint)
		}
		to, ok := byName[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %s→%s: %q: %w", e.From, e.To, e.To, core.ErrUnknownEndpoint)
		}
		edges[i] = core.Edge{From: from, To: to, Weight: e.Weight}
	}
	return core.NewGraph(vertices, edges)
}

// FromGraph converts g to a Document. IDs are written only when they differ
// from the dense positions, so builder-made graphs stay compact.
func FromGraph(name string, g *core.Graph) (Document, error) {
	if g == nil {
		return Document{}, core.ErrNilGraph
	}
	vs := g.Vertices()
	doc := Document{
		Name:     name,
		Vertices: make([]VertexDoc, len(vs)),
		Edges:    make([]EdgeDoc, 0, g.Size()),
	}

	dense := true
	seen := make(map[string]bool, len(vs))
	for i, v := range vs {
		if seen[v.Name] {
			return Document{}, fmt.Errorf("%w: %q", ErrDuplicateName, v.Name)
		}
		seen[v.Name] = true
		if v.ID != i {
			dense = false
		}
	}
	for i, v := range vs {
		doc.Vertices[i] = VertexDoc{Name: v.Name}
		if !dense {
			id := v.ID
			doc.Vertices[i].ID = &id
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From.Name, To: e.To.Name, Weight: e.Weight})
	}
	return doc, nil
}
