// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng          = nil          (stochastic constructors fail with ErrNeedRandSource)
//   • maxChildren  = 3
//   • starMode     = StarOutward
//   • direction    = AtoB
//   • edge bounds  = unset        (resolved per n: [n-1, 2(n-1)])
//   • maxAttempts  = 0            (resolved per n: 20·n²)
//   • completeCap  = 8

package builder

import (
	"github.com/katalvlaran/awpgen/rng"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors; only layout is shared.
type builderConfig struct {
	// Random source for stochastic choices; nil means “no randomness”.
	rng *rng.Source

	// Tree: max children per parent (>=1).
	maxChildren int
	// Star: spoke orientation.
	starMode StarMode
	// Bipartite: cross-edge orientation.
	direction Direction

	// Flow/DAG (and Bipartite truncation): target edge-count bounds.
	minEdges, maxEdges int
	boundsSet          bool

	// Flow/DAG: sampling attempts budget; 0 resolves to attemptsPerNode2·n².
	maxAttempts int

	// Complete: vertex cap.
	completeCap int

	// layout collects topology facts for BuildTopology; nil under BuildGraph.
	layout *Layout
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultMaxChildren = 3
	defaultCompleteCap = 8
	attemptsPerNode2   = 20
	minTopologyNodes   = 2
	minBipartiteHalf   = 2
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxChildren: defaultMaxChildren,
		starMode:    StarOutward,
		direction:   AtoB,
		completeCap: defaultCompleteCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeBounds resolves [min,max] for n nodes, clamped to [0, limit].
func (c builderConfig) edgeBounds(n, limit int) (lo, hi int) {
	lo, hi = n-1, 2*(n-1)
	if c.boundsSet {
		lo, hi = c.minEdges, c.maxEdges
	}
	if hi > limit {
		hi = limit
	}
	if lo > hi {
		lo = hi
	}

	return lo, hi
}

// attempts resolves the sampling budget for n nodes.
func (c builderConfig) attempts(n int) int {
	if c.maxAttempts > 0 {
		return c.maxAttempts
	}

	return attemptsPerNode2 * n * n
}

// record applies fn to the shared layout when one is attached.
func (c builderConfig) record(fn func(l *Layout)) {
	if c.layout != nil {
		fn(c.layout)
	}
}
