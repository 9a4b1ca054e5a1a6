package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
	"github.com/katalvlaran/awpgen/dfs"
)

// ExampleCountSimpleCycles counts the cycles of a small directed ring with a chord.
func ExampleCountSimpleCycles() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)
	_, _ = g.AddEdge("B", "A", 0)

	n, exact, _ := dfs.CountSimpleCycles(g, 0)
	fmt.Println(n, exact)
	// Output: 2 true
}
