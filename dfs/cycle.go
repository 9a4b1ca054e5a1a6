package dfs

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

// HasCycle reports whether the directed graph g contains a directed cycle
// (self-loops included), using three-color marking.
//
// Errors: ErrGraphNil, ErrUndirectedGraph, ErrNeighborFetch.
// Complexity: O(V + E).
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, fmt.Errorf("dfs: HasCycle: %w", ErrUndirectedGraph)
	}

	state := make(map[string]int, g.VertexCount())
	var visit func(id string) (bool, error)
	visit = func(id string) (bool, error) {
		state[id] = Gray
		nbs, err := g.Neighbors(id)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, e := range nbs {
			switch state[e.To] {
			case Gray:
				return true, nil
			case White:
				found, err := visit(e.To)
				if err != nil || found {
					return found, err
				}
			}
		}
		state[id] = Black

		return false, nil
	}

	for _, v := range g.Vertices() {
		if state[v] != White {
			continue
		}
		found, err := visit(v)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}

// CountSimpleCycles counts the simple directed cycles of g.
//
// Each cycle is counted exactly once, from its lowest-indexed vertex in
// insertion order: the search rooted at vertex s only extends through
// vertices inserted after s.
//
// limit > 0 bounds the enumeration: once limit cycles are seen the search
// stops and exact is false. limit <= 0 means unbounded.
//
// Errors: ErrGraphNil, ErrUndirectedGraph, ErrNeighborFetch.
// Complexity: exponential in the worst case; O(V·(V+E)) per found cycle.
func CountSimpleCycles(g *core.Graph, limit int) (count int, exact bool, err error) {
	if g == nil {
		return 0, false, ErrGraphNil
	}
	if !g.Directed() {
		return 0, false, fmt.Errorf("dfs: CountSimpleCycles: %w", ErrUndirectedGraph)
	}

	verts := g.Vertices()
	index := make(map[string]int, len(verts))
	adj := make(map[string][]string, len(verts))
	for i, v := range verts {
		index[v] = i
		nbs, nerr := g.Neighbors(v)
		if nerr != nil {
			return 0, false, fmt.Errorf("%w: %v", ErrNeighborFetch, nerr)
		}
		for _, e := range nbs {
			adj[v] = append(adj[v], e.To)
		}
	}

	onPath := make(map[string]bool, len(verts))
	var stop bool
	var walk func(start, id string)
	walk = func(start, id string) {
		onPath[id] = true
		for _, nid := range adj[id] {
			if stop {
				break
			}
			if nid == start {
				count++
				if limit > 0 && count >= limit {
					stop = true
				}
				continue
			}
			if index[nid] < index[start] || onPath[nid] {
				continue
			}
			walk(start, nid)
		}
		onPath[id] = false
	}

	for _, s := range verts {
		if stop {
			break
		}
		walk(s, s)
	}

	return count, !stop, nil
}
