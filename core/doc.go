// Package core provides the thread-safe in-memory Graph that every other
// awpgen package builds on: topology builders emit into it, the transfer
// simulator walks its edges, metrics and answer derivation traverse it.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Simple graphs only: self-loops and parallel edges are rejected
//   - Monotonic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
// Unlike a map-ordered graph, every enumeration surface is ordered by
// insertion: Vertices() returns IDs in the order they were first added,
// Edges() and Neighbors() return edges in creation order. Agents are added
// in scenario order and edges in builder emission order, so a fixed seed
// yields a byte-identical walk.
//
// Core methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	AddEdge(from, to string, weight int64) (edgeID string, err) // O(1)
//	RemoveEdge(edgeID string) error                             // O(E)
//	HasEdge(from, to string) bool                               // O(deg)
//	Neighbors(id string) ([]*Edge, error)                       // O(deg)
//	NeighborIDs(id string) ([]string, error)                    // O(deg)
//	Degree(id string) (in, out int, err error)                  // O(1)
//	Vertices() []string / Edges() []*Edge                       // O(V) / O(E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
//	ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
