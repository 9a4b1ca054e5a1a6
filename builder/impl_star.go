// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// impl_star.go - hub-and-spoke star.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); cfg.rng required (hub choice).
//   - Hub is chosen uniformly; spokes are visited in input order.
//   - StarOutward: hub→spoke. StarInward: spoke→hub.
//   - StarMixed: each spoke independently gets outward, inward or both.
//   - Result: every edge touches the hub; no spoke-spoke edges.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

const (
	methodStar = "Star"
	mixedKinds = 3 // outward, inward, both
)

// StarOf returns a Constructor for a star over ids.
func StarOf(ids []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateNodes(methodStar, ids, minTopologyNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodStar, ErrNeedRandSource)
		}
		if err := addNodes(methodStar, g, ids); err != nil {
			return err
		}

		hub := ids[cfg.rng.Intn(len(ids))]
		for _, spoke := range ids {
			if spoke == hub {
				continue
			}
			out, in := true, false
			switch cfg.starMode {
			case StarInward:
				out, in = false, true
			case StarMixed:
				switch cfg.rng.Intn(mixedKinds) {
				case 0:
					out, in = true, false
				case 1:
					out, in = false, true
				default:
					out, in = true, true
				}
			}
			if out {
				if err := addEdge(methodStar, g, hub, spoke); err != nil {
					return err
				}
			}
			if in {
				if err := addEdge(methodStar, g, spoke, hub); err != nil {
					return err
				}
			}
		}

		cfg.record(func(l *Layout) { l.Hub = hub })

		return nil
	}
}
