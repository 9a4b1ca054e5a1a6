// Package dfs implements the depth-first algorithms awpgen needs on a
// directed core.Graph: topological ordering, cycle detection, bounded
// simple-cycle counting, and simple-path enumeration.
//
// Every routine walks vertices in core insertion order and neighbors in
// edge creation order, so results are fully deterministic for a given graph.
//
// Key functions:
//
//	TopologicalSort(g) ([]string, error)          // O(V+E), ErrCycleDetected on cycles
//	Rank(g) (map[string]int, error)               // position in TopologicalSort(g)
//	HasCycle(g) (bool, error)                     // O(V+E), three-color marking
//	CountSimpleCycles(g, limit) (int, bool, error)
//	SimplePaths(g, from, to, cutoff) ([][]string, error)
//	CountSimplePaths(g, from, to, cutoff) (int, error)
//	FindPath(g, from, to) ([]string, error)       // O(V+E), ErrNoPath when unreachable
//
// Complexity:
//
//   - Cycle counting and path enumeration are exponential in the worst case
//     (complete digraphs). Callers bound them with limit/cutoff arguments.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrUndirectedGraph      for algorithms defined only on directed graphs.
//   - ErrVertexNotFound       if an endpoint is missing.
//   - ErrCycleDetected        from TopologicalSort.
//   - ErrNoPath               from FindPath.
//   - ErrNeighborFetch        wraps core adjacency failures.
package dfs
