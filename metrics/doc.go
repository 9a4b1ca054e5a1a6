// Package metrics computes the shape statistics of a realized agent graph:
// density, diameter, average branching and simple-cycle count. They feed the
// complexity scorer and are stored on every scenario.
//
// Policies:
//
//   - density      = |E| / (n·(n−1)); 0 for n < 2.
//   - diameter     = longest shortest path on the undirected view; 0 when
//     the graph is disconnected (explicit policy, not "undefined").
//   - avg_branching = mean out-degree over vertices with out-degree > 0.
//   - cycle_count  = simple directed cycles. Exhaustive up to the node
//     threshold, bounded above it (CycleCountExact reports which).
package metrics
