// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, NeighborIDs, Predecessors).
// Determinism:
//   - All results follow edge creation order.
// Concurrency:
//   - Read-only; takes muEdgeAdj read lock.

package core

// Neighbors returns copies of the edges leaving id, in creation order.
// For undirected edges the edge is reported from both endpoints.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.out[id]))
	for _, eid := range g.out[id] {
		cp := *g.edges[eid]
		out = append(out, &cp)
	}

	return out, nil
}

// NeighborIDs returns the distinct vertices reachable from id by one edge,
// in first-edge creation order.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		nbr := e.To
		if !e.Directed && e.To == id {
			nbr = e.From
		}
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		ids = append(ids, nbr)
	}

	return ids, nil
}

// Predecessors returns the distinct vertices with an edge into id,
// in first-edge creation order.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Predecessors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[string]struct{}, len(g.in[id]))
	ids := make([]string, 0, len(g.in[id]))
	for _, eid := range g.in[id] {
		e := g.edges[eid]
		src := e.From
		if !e.Directed && e.From == id {
			src = e.To
		}
		if _, dup := seen[src]; dup {
			continue
		}
		seen[src] = struct{}{}
		ids = append(ids, src)
	}

	return ids, nil
}
