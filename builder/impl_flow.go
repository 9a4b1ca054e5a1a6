// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// impl_flow.go - random directed flow network and its acyclic variant.
//
// Canonical model:
//   - Draw a target edge count uniformly from the resolved [min,max] bounds
//     (clamped to n·(n−1) for Flow, n·(n−1)/2 for DAG).
//   - Repeatedly sample an ordered pair u≠v; duplicates are rejected.
//   - DAG only: after each insertion run dfs.HasCycle; a cycle-closing edge
//     is removed again and counted as a rejected attempt.
//   - Rejections are bounded by cfg.attempts(n). Exhausting the budget below
//     the minimum returns the graph built so far with Layout.BestEffort set.
//
// Complexity:
//   - Flow: O(attempts + target·deg) time.
//   - DAG:  O((attempts + target)·(V+E)) time (one cycle check per insertion).

package builder

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
	"github.com/katalvlaran/awpgen/dfs"
)

const (
	methodFlow = "Flow"
	methodDAG  = "DAG"
)

// FlowOf returns a Constructor for a random directed graph over ids; cycles allowed.
func FlowOf(ids []string) Constructor {
	return sampled(methodFlow, ids, false)
}

// DAGOf returns a Constructor for a random directed acyclic graph over ids.
func DAGOf(ids []string) Constructor {
	return sampled(methodDAG, ids, true)
}

// sampled implements both Flow and DAG; acyclic selects the cycle guard.
func sampled(method string, ids []string, acyclic bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateNodes(method, ids, minTopologyNodes); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}
		if err := addNodes(method, g, ids); err != nil {
			return err
		}

		n := len(ids)
		limit := n * (n - 1)
		if acyclic {
			limit /= 2
		}
		lo, hi := cfg.edgeBounds(n, limit)
		target := cfg.rng.IntRange(lo, hi)
		budget := cfg.attempts(n)

		rejected := 0
		for g.EdgeCount() < target && rejected < budget {
			u := ids[cfg.rng.Intn(n)]
			v := ids[cfg.rng.Intn(n)]
			if u == v || g.HasEdge(u, v) {
				rejected++
				continue
			}
			eid, err := g.AddEdge(u, v, 0)
			if err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %v: %w", method, u, v, err, ErrConstructFailed)
			}
			if !acyclic {
				continue
			}
			cyclic, err := dfs.HasCycle(g)
			if err != nil {
				return fmt.Errorf("%s: HasCycle: %v: %w", method, err, ErrConstructFailed)
			}
			if cyclic {
				if err = g.RemoveEdge(eid); err != nil {
					return fmt.Errorf("%s: RemoveEdge(%s): %v: %w", method, eid, err, ErrConstructFailed)
				}
				rejected++
			}
		}

		bestEffort := g.EdgeCount() < lo
		cfg.record(func(l *Layout) {
			l.Attempts = rejected
			l.BestEffort = bestEffort
		})

		return nil
	}
}
