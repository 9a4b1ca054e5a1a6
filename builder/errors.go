// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with `%w`.
//   • Algorithms never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates the node list is smaller than the topology minimum
// (every topology needs 2 nodes; bipartite needs 2 per half).
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooManyVertices indicates the node list exceeds a topology cap
// (complete digraphs grow quadratically and are capped).
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrDuplicateVertex indicates the node list repeats an ID or contains an empty one.
var ErrDuplicateVertex = errors.New("builder: duplicate or empty vertex id")

// ErrUnknownTopology indicates a topology tag outside the closed set.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// random source in the resolved builderConfig (WithSeed/WithSource).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates an option value that can only be rejected once
// all options are resolved (e.g., edge bounds against the node count).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a constructor could not emit an edge it had
// already validated (core rejected it), or a nil constructor was composed.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrTopologyViolation is returned by Verify when a graph breaks the
// structural contract of its topology.
var ErrTopologyViolation = errors.New("builder: topology contract violated")

// IsConfiguration reports whether err is a configuration-class failure:
// structurally invalid topology parameters that will fail for every draw and
// therefore must abort a run instead of being retried.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrTooFewVertices) ||
		errors.Is(err, ErrTooManyVertices) ||
		errors.Is(err, ErrDuplicateVertex) ||
		errors.Is(err, ErrUnknownTopology) ||
		errors.Is(err, ErrNeedRandSource) ||
		errors.Is(err, ErrOptionViolation)
}
