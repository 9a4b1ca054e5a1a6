// Package scenario holds the scenario data model and the transfer simulator
// that populates it.
//
// A Scenario is a set of agents with per-object inventories, an ordered
// transfer log, and the graph shape the log was drawn from. It is built once
// by Simulate (plus the generator's bookkeeping) and is read-only afterwards.
//
// Invariants checked by Validate:
//
//   - Conservation: per object, Σ final == Σ initial across agents.
//   - Non-negativity: replaying any prefix of the log never drives an
//     inventory below zero.
//   - Temporal order: steps are the contiguous sequence 0..len-1.
//   - Consistency: every agent carries exactly the scenario's object keys,
//     and Final equals the replay of the full log.
//
// Replay is the only way intermediate states are obtained; nothing stores
// snapshots.
package scenario
