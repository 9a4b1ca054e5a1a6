// Package rng is the explicit random-source handle threaded through every
// stochastic awpgen call. Nothing in awpgen reads a global generator.
//
// A run has one seed. Each scenario draws from its own Source, seeded by
// Derive(runSeed, index, attempt), so scenarios can be generated in any
// order, on any number of goroutines, and still reproduce bit-for-bit.
//
// A Source is NOT safe for concurrent use; give each goroutine its own.
package rng
