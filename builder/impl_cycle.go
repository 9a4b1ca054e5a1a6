// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// impl_cycle.go - directed Hamiltonian ring.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); cfg.rng required.
//   - Nodes are shuffled into traversal order c; edges c[i]→c[i+1] and c[n-1]→c[0].
//   - Result: exactly n edges forming one cycle that touches every node once.
//
// Complexity: O(n) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

const methodRing = "Ring"

// RingOf returns a Constructor for a directed ring over ids.
func RingOf(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateNodes(methodRing, ids, minTopologyNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRing, ErrNeedRandSource)
		}
		if err := addNodes(methodRing, g, ids); err != nil {
			return err
		}

		order := shuffled(cfg, ids)
		for i, u := range order {
			if err := addEdge(methodRing, g, u, order[(i+1)%len(order)]); err != nil {
				return err
			}
		}

		cfg.record(func(l *Layout) { l.Cycle = order })

		return nil
	}
}
