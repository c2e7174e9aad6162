package core_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// ExampleBuilder builds a small graph by name and queries it.
func ExampleBuilder() {
	g, err := core.NewBuilder().
		Vertices("A", "B", "C").
		Edge("A", "B", 5).
		Edge("A", "C", 4).
		Edge("B", "C", -2).
		Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	b, _ := g.VertexByName("B")
	c, _ := g.VertexByName("C")
	e, _ := g.EdgeBetween(b, c)

	fmt.Println("order:", g.Order(), "size:", g.Size())
	fmt.Println(e)
	// Output:
	// order: 3 size: 3
	// B -(-2)> C
}
