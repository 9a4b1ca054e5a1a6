package core_test

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

// ExampleGraph demonstrates creation, mutation and ordered queries.
func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	// Edges auto-add their endpoints in first-seen order.
	_, _ = g.AddEdge("Alice", "Bob", 3)
	_, _ = g.AddEdge("Bob", "Carol", 2)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Bob→Alice exists?", g.HasEdge("Bob", "Alice"))
	for _, e := range g.Edges() {
		fmt.Printf("%s %s→%s %d\n", e.ID, e.From, e.To, e.Weight)
	}

	// Output:
	// Vertices: [Alice Bob Carol]
	// Bob→Alice exists? false
	// e1 Alice→Bob 3
	// e2 Bob→Carol 2
}
