// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// validators.go - structural conformance checks for built layouts.
//
// Verify re-derives each topology's invariant from the graph alone (plus the
// Layout facts chosen while building), so it also guards graphs that were
// deserialized or assembled by hand:
//   - Tree:      n−1 edges, acyclic, exactly one vertex with in-degree 0 (the root).
//   - Ring:      n edges, in = out = 1 everywhere, one simple cycle.
//   - Star:      every edge touches the hub.
//   - Flow:      no self-loops (guaranteed by core).
//   - DAG:       no directed cycle.
//   - Complete:  n·(n−1) edges.
//   - Bipartite: every edge crosses Left/Right in the configured direction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/awpgen/dfs"
)

const methodVerify = "Verify"

// Verify checks that l.Graph satisfies the structural contract of l.Topology.
// Violations wrap ErrTopologyViolation.
func Verify(l *Layout) error {
	if l == nil || l.Graph == nil {
		return fmt.Errorf("%s: nil layout: %w", methodVerify, ErrTopologyViolation)
	}
	g := l.Graph
	n, m := g.VertexCount(), g.EdgeCount()
	violation := func(format string, args ...any) error {
		return fmt.Errorf("%s(%s): %s: %w", methodVerify, l.Topology, fmt.Sprintf(format, args...), ErrTopologyViolation)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			return violation("self-loop at %s", e.From)
		}
	}

	switch l.Topology {
	case Tree:
		if m != n-1 {
			return violation("edges=%d want %d", m, n-1)
		}
		if cyclic, err := dfs.HasCycle(g); err != nil || cyclic {
			return violation("cycle present (err=%v)", err)
		}
		roots := 0
		for _, v := range g.Vertices() {
			in, _, _ := g.Degree(v)
			switch in {
			case 0:
				roots++
				if v != l.Root {
					return violation("unexpected root %s", v)
				}
			case 1:
			default:
				return violation("%s has %d parents", v, in)
			}
		}
		if roots != 1 {
			return violation("roots=%d", roots)
		}

	case Ring:
		if m != n {
			return violation("edges=%d want %d", m, n)
		}
		for _, v := range g.Vertices() {
			in, out, _ := g.Degree(v)
			if in != 1 || out != 1 {
				return violation("%s degree in=%d out=%d", v, in, out)
			}
		}
		if cycles, _, err := dfs.CountSimpleCycles(g, 2); err != nil || cycles != 1 {
			return violation("cycles=%d (err=%v)", cycles, err)
		}

	case Star:
		for _, e := range g.Edges() {
			if e.From != l.Hub && e.To != l.Hub {
				return violation("spoke edge %s→%s", e.From, e.To)
			}
		}

	case Flow:
		// any simple digraph qualifies

	case DAG:
		if cyclic, err := dfs.HasCycle(g); err != nil || cyclic {
			return violation("cycle present (err=%v)", err)
		}

	case Complete:
		if m != n*(n-1) {
			return violation("edges=%d want %d", m, n*(n-1))
		}

	case Bipartite:
		side := make(map[string]int, n)
		for _, v := range l.Left {
			side[v] = 1
		}
		for _, v := range l.Right {
			side[v] = 2
		}
		for _, e := range g.Edges() {
			from, to := side[e.From], side[e.To]
			if from == 0 || to == 0 || from == to {
				return violation("edge %s→%s does not cross the partition", e.From, e.To)
			}
			if (l.Direction == AtoB && from != 1) || (l.Direction == BtoA && from != 2) {
				return violation("edge %s→%s against direction %s", e.From, e.To, l.Direction)
			}
		}

	default:
		return fmt.Errorf("%s: %s: %w", methodVerify, l.Topology, ErrUnknownTopology)
	}

	return nil
}
