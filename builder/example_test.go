package builder_test

import (
	"fmt"

	"github.com/katalvlaran/roadwidth/builder"
)

// ExampleGenerate builds a reproducible connected graph.
func ExampleGenerate() {
	g, err := builder.Generate(6, 8, builder.WithSeed(1), builder.WithWidthRange(10, 90))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.NumNodes, g.NumEdges())

	_, err = builder.Generate(5, 3, builder.WithSeed(1))
	fmt.Println(err)

	// Output:
	// 6 8
	// Generate: numEdges=3 < numNodes-1=4, graph cannot be connected: builder: invalid argument
}
