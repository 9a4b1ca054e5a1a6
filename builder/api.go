// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - BuildTopology(t, ids, opts...) is the tagged front door: one directed graph
//     over the given node list plus the Layout facts Verify needs.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Layout is a built topology: the graph plus the structural facts chosen
// while building it.
type Layout struct {
	// Graph is the directed graph over Nodes.
	Graph *core.Graph
	// Topology is the tag that produced Graph.
	Topology Topology
	// Nodes is the input node list, in input order.
	Nodes []string

	// Root is the Tree root.
	Root string
	// Hub is the Star hub.
	Hub string
	// Cycle is the Ring traversal order (Cycle[i]→Cycle[i+1], last→first).
	Cycle []string
	// Left and Right are the Bipartite halves.
	Left, Right []string
	// Direction is the Bipartite edge orientation.
	Direction Direction

	// BestEffort reports that Flow or DAG exhausted its attempts before
	// reaching the minimum edge count and returned what it had.
	BestEffort bool
	// Attempts counts rejected samples (duplicates, cycle-closing edges).
	Attempts int
}

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return build(gopts, newBuilderConfig(bopts...), cons...)
}

// build applies cons to a fresh graph under an already-resolved cfg.
func build(gopts []core.GraphOption, cfg builderConfig, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// ForTopology returns the Constructor for tag t over ids.
// Unknown tags return ErrUnknownTopology.
func ForTopology(t Topology, ids []string) (Constructor, error) {
	switch t {
	case Tree:
		return TreeOf(ids), nil
	case Ring:
		return RingOf(ids), nil
	case Star:
		return StarOf(ids), nil
	case Flow:
		return FlowOf(ids), nil
	case DAG:
		return DAGOf(ids), nil
	case Complete:
		return CompleteOf(ids), nil
	case Bipartite:
		return BipartiteOf(ids), nil
	default:
		return nil, fmt.Errorf("ForTopology(%s): %w", t, ErrUnknownTopology)
	}
}

// BuildTopology builds a directed, unweighted, loop-free simple graph over
// ids following topology t, and returns it with its Layout.
//
// Errors: configuration-class sentinels (see IsConfiguration) and
// ErrConstructFailed; all wrapped with method context.
func BuildTopology(t Topology, ids []string, opts ...BuilderOption) (*Layout, error) {
	cons, err := ForTopology(t, ids)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	layout := &Layout{Topology: t, Nodes: append([]string(nil), ids...)}
	cfg.layout = layout

	g, err := build([]core.GraphOption{core.WithDirected(true)}, cfg, cons)
	if err != nil {
		return nil, err
	}
	layout.Graph = g

	return layout, nil
}

// Feasible reports whether t can be built over n nodes under opts without a
// configuration error. Only WithCompleteCap influences the answer.
func Feasible(t Topology, n int, opts ...BuilderOption) bool {
	if !t.Valid() || n < minTopologyNodes {
		return false
	}
	switch t {
	case Bipartite:
		return n >= 2*minBipartiteHalf
	case Complete:
		return n <= newBuilderConfig(opts...).completeCap
	default:
		return true
	}
}

// validateNodes enforces the shared node-list contract.
func validateNodes(method string, ids []string, min int) error {
	if len(ids) < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, len(ids), min, ErrTooFewVertices)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%s: empty id: %w", method, ErrDuplicateVertex)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: id %q repeated: %w", method, id, ErrDuplicateVertex)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// addNodes inserts ids in input order so vertex enumeration mirrors the agent list.
func addNodes(method string, g *core.Graph, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge emits u→v with weight 0, wrapping core errors as ErrConstructFailed.
func addEdge(method string, g *core.Graph, u, v string) error {
	if _, err := g.AddEdge(u, v, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

// shuffled returns a shuffled copy of ids.
func shuffled(cfg builderConfig, ids []string) []string {
	out := append([]string(nil), ids...)
	cfg.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}
