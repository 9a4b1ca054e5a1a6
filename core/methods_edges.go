// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", …).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically, store the Edge, link adjacency.
//  5. Mirror adjacency for undirected edges.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(deg(from)) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	eid := nextEdgeID(seq)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed, seq: seq}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)
	g.out[from] = append(g.out[from], eid)
	g.in[to] = append(g.in[to], eid)

	// 5) Mirror undirected
	if !e.Directed && from != to {
		g.out[to] = append(g.out[to], eid)
		g.in[from] = append(g.in[from], eid)
	}

	return eid, nil
}

// RemoveEdge deletes one edge (and its undirected mirror).
//
// Errors: ErrEdgeNotFound.
// Complexity: O(E) to keep insertion order compact.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.edgeOrder = dropID(g.edgeOrder, eid)
	g.out[e.From] = dropID(g.out[e.From], eid)
	g.in[e.To] = dropID(g.in[e.To], eid)
	if !e.Directed && e.From != e.To {
		g.out[e.To] = dropID(g.out[e.To], eid)
		g.in[e.From] = dropID(g.in[e.From], eid)
	}

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges match in both orientations.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		cp := *g.edges[eid]
		out = append(out, &cp)
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// hasEdgeLocked expects muEdgeAdj to be held.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, eid := range g.out[from] {
		e := g.edges[eid]
		if e.From == from && e.To == to {
			return true
		}
		if !e.Directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// nextEdgeID renders a sequence number as "e<seq>" without fmt allocations.
func nextEdgeID(seq uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// dropID removes the first occurrence of id, preserving order.
func dropID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
