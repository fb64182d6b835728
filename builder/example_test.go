package builder_test

import (
	"fmt"

	"github.com/MrLoydHD/mei-aa-p1/builder"
)

// ExampleBuildGraph builds the weighted triangle used throughout the docs.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithVertexWeights(5, 3, 10)},
		builder.Complete(3),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.TotalWeight())

	// Output:
	// 3 3 18
}

// ExampleRandomGraph shows the exact edge count of the Random model.
func ExampleRandomGraph() {
	g, _ := builder.RandomGraph(10, 0.5, builder.DefaultSeed)
	fmt.Println(g.VertexCount(), g.EdgeCount())

	// Output:
	// 10 22
}
