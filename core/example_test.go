package core_test

import (
	"fmt"

	"github.com/katalvlaran/triad/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Add edges (auto-adds vertices A, B, C):
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))

	_ = g.RemoveEdge("A", "B")
	fmt.Println("Edges:", g.Edges())

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// Edges: [{A C} {B C}]
}
