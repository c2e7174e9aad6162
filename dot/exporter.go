// SPDX-License-Identifier: MIT
// Package: shortpath/dot
//
// exporter.go - DOT text for (graph, path) pairs.

package dot

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/solver"
)

// ErrForeignEdge indicates a path edge that is not an edge of the graph.
var ErrForeignEdge = errors.New("dot: path edge does not belong to graph")

// Defaults for Options.
const (
	DefaultGraphName = "BellmanFord"
	DefaultPathColor = "blue"
)

// Options configures an Exporter.
//
// GraphName – identifier after "digraph".
// PathColor – Graphviz colour of path edges.
type Options struct {
	GraphName string
	PathColor string
}

// Option represents a functional option for configuring an Exporter.
type Option func(*Options)

// WithGraphName sets the digraph identifier. Empty names keep the default.
func WithGraphName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.GraphName = name
		}
	}
}

// WithPathColor sets the colour of highlighted edges. Empty keeps the default.
func WithPathColor(color string) Option {
	return func(o *Options) {
		if color != "" {
			o.PathColor = color
		}
	}
}

// Exporter writes DOT text. The zero value is not usable; call NewExporter.
type Exporter struct {
	opts Options
}

// NewExporter returns an Exporter with the given options applied over the
// defaults.
func NewExporter(opts ...Option) *Exporter {
	o := Options{GraphName: DefaultGraphName, PathColor: DefaultPathColor}
	for _, opt := range opts {
		opt(&o)
	}
	return &Exporter{opts: o}
}

// Export implements solver.Exporter.
//
// Errors: core.ErrNilGraph for a nil graph, ErrForeignEdge when a path edge
// is not an edge of g (matched by ID and endpoints).
//
// Complexity: O(V + E) time and space.
func (x *Exporter) Export(g *core.Graph, path []core.Edge) (string, error) {
	if g == nil {
		return "", core.ErrNilGraph
	}

	onPath := make(map[int]bool, len(path))
	for _, e := range path {
		if e.ID < 0 || e.ID >= g.Size() {
			return "", fmt.Errorf("%w: %s (id %d)", ErrForeignEdge, e, e.ID)
		}
		if ge := g.EdgeAt(e.ID); !ge.From.Equal(e.From) || !ge.To.Equal(e.To) {
			return "", fmt.Errorf("%w: %s (id %d)", ErrForeignEdge, e, e.ID)
		}
		onPath[e.ID] = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", quoteID(x.opts.GraphName))

	sb.WriteString("//Shortest path edges\n")
	for _, e := range path {
		fmt.Fprintf(&sb, "%s -> %s [ label=\"%d\" ] [color=%s];\n",
			quoteID(e.From.Name), quoteID(e.To.Name), e.Weight, quoteID(x.opts.PathColor))
	}

	sb.WriteString("//other edges\n")
	for _, e := range g.Edges() {
		if onPath[e.ID] {
			continue
		}
		fmt.Fprintf(&sb, "%s -> %s [ label=\"%d\" ];\n", quoteID(e.From.Name), quoteID(e.To.Name), e.Weight)
	}
	sb.WriteString("}")

	return sb.String(), nil
}

var _ solver.Exporter = (*Exporter)(nil)

var plainID = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*|-?(\.[0-9]+|[0-9]+(\.[0-9]*)?))$`)

// quoteID returns s unchanged when it is a bare DOT identifier or numeral,
// and as a quoted string otherwise.
func quoteID(s string) string {
	if plainID.MatchString(s) {
		return s
	}
	return strconv.Quote(s)
}
