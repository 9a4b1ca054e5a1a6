// Package answer computes the correct answer of every question type from a
// finalized scenario and a target.
//
// The engine is pure: the same (scenario, type, target) always yields the
// same Answer, and nothing is cached between calls. Question types form a
// closed enum of 18 tags in three categories:
//
//	basic     initial_count final_count difference transfer_amount
//	          total_transferred total_received sum_all
//	advanced  comparative_more comparative_difference temporal_after_step
//	          conditional_if_gave_more multi_agent_combined
//	          ratio_fraction ratio_percentage
//	multi-hop multi_hop_indirect multi_hop_net_flow multi_hop_path_count
//	          multi_hop_multi_step
//
// Multi-hop types work on the transfer graph of one object: a weighted
// digraph with an edge u→v whenever u gave the object to v, weighted by the
// summed quantity. Path search reuses the dfs and bfs packages.
//
// Errors:
//
//   - ErrInvalidTarget: the target names an unknown agent or object, or is
//     malformed for the type (missing secondary, tie in comparative_more).
//   - ErrUnreachableTarget: a path-based pair has no path. Callers resample.
package answer
