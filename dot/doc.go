// Package dot renders a graph and a highlighted shortest path as Graphviz DOT
// and, through github.com/goccy/go-graphviz, as SVG.
//
// Exporter implements solver.Exporter, so any solver can hand its current
// path over with s.Export(dot.NewExporter()). The layout of the text is
// fixed: path edges first, coloured, then every remaining edge in insertion
// order, each group under a line comment.
//
//	digraph BellmanFord {
//	//Shortest path edges
//	A -> B [ label="2" ] [color=blue];
//	//other edges
//	A -> C [ label="6" ];
//	}
//
// Edges are compared by ID, so of two parallel edges only the one on the
// path is highlighted.
package dot
