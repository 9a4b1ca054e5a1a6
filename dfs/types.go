package dfs

import (
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrUndirectedGraph is returned by algorithms defined only on directed graphs.
	ErrUndirectedGraph = errors.New("dfs: graph must be directed")

	// ErrVertexNotFound indicates a path endpoint is not in the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNoPath indicates that no directed path joins the requested endpoints.
	ErrNoPath = errors.New("dfs: no path")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)
