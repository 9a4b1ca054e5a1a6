// Package builder produces the directed agent graphs that transfer scenarios
// walk. Each topology is a tagged member of a closed set with one handler:
//
//	tree       random spanning tree, one root, parent→child, bounded branching
//	ring       one directed Hamiltonian cycle
//	star       one hub; spokes outward, inward or mixed
//	flow       random edges without self-loops until the count is within bounds
//	dag        flow sampling with a cycle check after every insertion
//	complete   all n·(n−1) ordered pairs, capped in n
//	bipartite  two halves; edges only across, A→B, B→A or both
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   random source, branching, modes, edge bounds, budgets.
//   - Constructors: TreeOf, RingOf, StarOf, FlowOf, DAGOf, CompleteOf, BipartiteOf,
//     composed by BuildGraph or selected by tag via ForTopology/BuildTopology.
//   - Conformance: Verify(layout) re-checks each topology's structural invariant.
//   - Feasibility: Feasible(t, n) tells callers which tags accept n nodes.
//
// Guarantees:
//
//   - Determinism: the same node list, options and seed yield the same graph.
//     Vertices are inserted in input order; randomness flows only through the
//     explicit rng.Source handed in with WithSeed or WithSource.
//   - Bounded sampling: flow/dag stop after a fixed rejection budget and
//     report Layout.BestEffort instead of looping.
//   - Fast-fail on invalid option parameters via panics in option-constructors;
//     constructors return sentinel errors and never panic.
//   - Configuration-class errors (IsConfiguration) are structural: retrying
//     with another seed cannot fix them.
package builder
