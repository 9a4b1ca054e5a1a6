// Package question samples question instances from finalized scenarios.
//
// For each instance the Sampler draws a question type by weight, draws a
// target that fits the type, computes the answer, applies masking and
// scores the result. Targets the answer engine rejects (ErrInvalidTarget,
// ErrUnreachableTarget) are resampled a bounded number of times; when a
// type has no valid target the instance falls back to final_count.
//
// Instance IDs are name-based UUIDs of (scenario ID, index), so a rerun
// with the same seed reproduces them.
package question
