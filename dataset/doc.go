// Package dataset persists and checks generated datasets.
//
// A dataset directory holds scenarios.jsonl and questions.jsonl, one JSON
// record per line, optionally zstd-compressed (.jsonl.zst). Writer and
// Reader handle both forms; Reader picks whichever file exists.
//
// Validate re-checks a directory from scratch: each record against the
// embedded JSON schemas, each scenario against the transfer invariants, and
// each question by recomputing its answer and reconstructing it from the
// stated facts of its presentation. Analyze summarizes the distribution
// of question types, masking patterns, targets and complexity scores.
package dataset
