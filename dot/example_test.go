package dot_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dot"
)

func ExampleExporter_Export() {
	g := core.NewBuilder().
		Vertices("A", "B", "C").
		Edge("A", "B", 2).
		Edge("B", "C", -1).
		Edge("A", "C", 3).
		MustBuild()
	edges := g.Edges()

	out, _ := dot.NewExporter().Export(g, edges[:2])
	fmt.Println(out)
	// Output:
	// digraph BellmanFord {
	// //Shortest path edges
	// A -> B [ label="2" ] [color=blue];
	// B -> C [ label="-1" ] [color=blue];
	// //other edges
	// A -> C [ label="3" ];
	// }
}
