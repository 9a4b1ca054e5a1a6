// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// impl_bipartite.go - two-way partition with cross edges only.
//
// Contract:
//   - Nodes are shuffled; Left = first ⌊n/2⌋, Right = the rest.
//   - Each half needs ≥ 2 nodes, so n ≥ 4 (else ErrTooFewVertices).
//   - Cross edges per cfg.direction: AtoB (L→R), BtoA (R→L) or BothWays.
//   - With WithEdgeBounds set, the cross edges are shuffled and truncated to
//     a target drawn from the bounds (never below 1).
//
// Complexity: O(n²) time and space for the candidate edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

const methodBipartite = "Bipartite"

// BipartiteOf returns a Constructor for a bipartite digraph over ids.
func BipartiteOf(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateNodes(methodBipartite, ids, 2*minBipartiteHalf); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodBipartite, ErrNeedRandSource)
		}
		if err := addNodes(methodBipartite, g, ids); err != nil {
			return err
		}

		order := shuffled(cfg, ids)
		mid := len(order) / 2
		left, right := order[:mid], order[mid:]

		var pairs [][2]string
		for _, a := range left {
			for _, b := range right {
				if cfg.direction != BtoA {
					pairs = append(pairs, [2]string{a, b})
				}
				if cfg.direction != AtoB {
					pairs = append(pairs, [2]string{b, a})
				}
			}
		}
		if cfg.boundsSet {
			lo, hi := cfg.edgeBounds(len(ids), len(pairs))
			target := cfg.rng.IntRange(lo, hi)
			if target < 1 {
				target = 1
			}
			cfg.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
			pairs = pairs[:target]
		}
		for _, p := range pairs {
			if err := addEdge(methodBipartite, g, p[0], p[1]); err != nil {
				return err
			}
		}

		cfg.record(func(l *Layout) {
			l.Left = append([]string(nil), left...)
			l.Right = append([]string(nil), right...)
			l.Direction = cfg.direction
		})

		return nil
	}
}
