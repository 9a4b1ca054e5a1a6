// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// neighbors in edge creation order. WithUndirected walks a directed graph
// as its weakly-connected view (successors then predecessors), which is
// what graph diameter is measured on.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per dequeue.
//   - WithUndirected()   ignore edge orientation.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors.
package bfs
