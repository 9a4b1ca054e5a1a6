// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/awpgen/builder"
)

// ExampleBuildTopology builds a complete digraph and checks its contract.
func ExampleBuildTopology() {
	l, err := builder.BuildTopology(builder.Complete, []string{"A", "B", "C"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(l.Topology, l.Graph.EdgeCount(), builder.Verify(l) == nil)
	// Output: complete 6 true
}
