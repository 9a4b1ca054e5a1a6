// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// impl_complete.go - complete digraph.
//
// Contract:
//   - 2 ≤ n ≤ cfg.completeCap (else ErrTooFewVertices / ErrTooManyVertices).
//     The cap keeps n·(n−1) edges and the exponential cycle count tractable.
//   - Emits every ordered pair (u,v), u≠v, in input order: u asc, then v asc.
//   - Deterministic; cfg.rng is not used.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

const methodComplete = "Complete"

// CompleteOf returns a Constructor for the complete digraph over ids.
func CompleteOf(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateNodes(methodComplete, ids, minTopologyNodes); err != nil {
			return err
		}
		if len(ids) > cfg.completeCap {
			return fmt.Errorf("%s: n=%d > cap=%d: %w", methodComplete, len(ids), cfg.completeCap, ErrTooManyVertices)
		}
		if err := addNodes(methodComplete, g, ids); err != nil {
			return err
		}
		for _, u := range ids {
			for _, v := range ids {
				if u == v {
					continue
				}
				if err := addEdge(methodComplete, g, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
