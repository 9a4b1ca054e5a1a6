// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithSource.

package builder

import (
	"github.com/katalvlaran/awpgen/rng"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithSource provides an explicit random source for stochastic builders.
// Panics on nil; the caller keeps ownership and the builder advances it.
func WithSource(s *rng.Source) BuilderOption {
	if s == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.rng = s
	}
}

// WithSeed creates a fresh rng.Source with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rng.New(seed)
	}
}

// WithMaxChildren bounds the branching of Tree parents. Panics if k < 1.
func WithMaxChildren(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithMaxChildren(k<1)")
	}
	return func(c *builderConfig) {
		c.maxChildren = k
	}
}

// WithStarMode selects Star spoke orientation. Panics on an undeclared mode.
func WithStarMode(m StarMode) BuilderOption {
	if m < StarOutward || m > StarMixed {
		panic("builder: WithStarMode(unknown)")
	}
	return func(c *builderConfig) {
		c.starMode = m
	}
}

// WithBipartiteDirection selects Bipartite edge orientation. Panics on an undeclared direction.
func WithBipartiteDirection(d Direction) BuilderOption {
	if d < AtoB || d > BothWays {
		panic("builder: WithBipartiteDirection(unknown)")
	}
	return func(c *builderConfig) {
		c.direction = d
	}
}

// WithEdgeBounds sets the target edge-count interval for Flow and DAG, and the
// truncation cap for Bipartite. Panics if lo < 0 or hi < lo.
// Bounds above the topology maximum are clamped at build time.
func WithEdgeBounds(lo, hi int) BuilderOption {
	if lo < 0 || hi < lo {
		panic("builder: WithEdgeBounds(lo<0 || hi<lo)")
	}
	return func(c *builderConfig) {
		c.minEdges, c.maxEdges, c.boundsSet = lo, hi, true
	}
}

// WithMaxAttempts bounds random sampling in Flow and DAG. Panics if k < 1.
func WithMaxAttempts(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithMaxAttempts(k<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = k
	}
}

// WithCompleteCap sets the Complete vertex cap. Panics if k < 2.
func WithCompleteCap(k int) BuilderOption {
	if k < minTopologyNodes {
		panic("builder: WithCompleteCap(k<2)")
	}
	return func(c *builderConfig) {
		c.completeCap = k
	}
}
