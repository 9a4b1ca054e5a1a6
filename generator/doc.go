// Package generator turns a validated config.Config into a dataset batch.
//
// Every scenario index is built on its own rng.Source seeded with
// rng.Derive(seed, index, attempt), so a batch is reproducible and its
// content does not depend on the number of workers. Indices fan out over an
// errgroup with a bounded number of goroutines and land in index-addressed
// slots.
//
// A scenario whose attempts all fail (simulation produced nothing, the
// topology builder gave up, a question could not be masked) is skipped and
// counted in the Report. Configuration-class errors and context cancellation
// abort the whole run.
//
// Logging goes through a *zap.Logger (WithLogger, default no-op); counters
// and histograms go to a Metrics value backed by its own Prometheus registry.
package generator
