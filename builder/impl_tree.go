// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// impl_tree.go - random spanning tree.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); cfg.rng required.
//   - Nodes are shuffled; the first becomes the root.
//   - Every later node picks a parent uniformly among already-placed nodes
//     with fewer than cfg.maxChildren children, and receives parent→child.
//   - Result: n−1 edges, acyclic, single root, out-degree ≤ maxChildren.
//
// Complexity: O(n²) time worst case (candidate scan), O(n) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

const methodTree = "Tree"

// TreeOf returns a Constructor for a random spanning tree over ids.
func TreeOf(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateNodes(methodTree, ids, minTopologyNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodTree, ErrNeedRandSource)
		}
		if err := addNodes(methodTree, g, ids); err != nil {
			return err
		}

		order := shuffled(cfg, ids)
		children := make(map[string]int, len(order))
		placed := []string{order[0]}
		candidates := make([]string, 0, len(order))
		for _, child := range order[1:] {
			candidates = candidates[:0]
			for _, p := range placed {
				if children[p] < cfg.maxChildren {
					candidates = append(candidates, p)
				}
			}
			// The newest placed node has no children yet, so candidates is never empty.
			parent := candidates[cfg.rng.Intn(len(candidates))]
			if err := addEdge(methodTree, g, parent, child); err != nil {
				return err
			}
			children[parent]++
			placed = append(placed, child)
		}

		cfg.record(func(l *Layout) { l.Root = order[0] })

		return nil
	}
}
