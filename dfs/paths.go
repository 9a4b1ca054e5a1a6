package dfs

import (
	"fmt"

	"github.com/katalvlaran/awpgen/core"
)

// pathWalker enumerates simple directed paths between two fixed endpoints.
type pathWalker struct {
	graph  *core.Graph
	to     string
	cutoff int             // max edges per path; <= 0 means unbounded
	onPath map[string]bool // vertices on the current prefix
	stack  []string        // current prefix
	emit   func(path []string) bool
}

// walk extends the current prefix from id. It returns false once emit asks to stop.
func (w *pathWalker) walk(id string) (bool, error) {
	w.onPath[id] = true
	w.stack = append(w.stack, id)
	defer func() {
		w.onPath[id] = false
		w.stack = w.stack[:len(w.stack)-1]
	}()

	if id == w.to && len(w.stack) > 1 {
		return w.emit(w.stack), nil
	}
	if w.cutoff > 0 && len(w.stack)-1 >= w.cutoff {
		return true, nil
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range nbs {
		if w.onPath[e.To] {
			continue
		}
		more, err := w.walk(e.To)
		if err != nil || !more {
			return more, err
		}
	}

	return true, nil
}

// enumerate validates the endpoints and drives a pathWalker.
func enumerate(g *core.Graph, method, from, to string, cutoff int, emit func([]string) bool) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.Directed() {
		return fmt.Errorf("dfs: %s: %w", method, ErrUndirectedGraph)
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("dfs: %s(%q, %q): %w", method, from, to, ErrVertexNotFound)
	}
	if from == to {
		return nil
	}
	w := &pathWalker{graph: g, to: to, cutoff: cutoff, onPath: make(map[string]bool), emit: emit}
	_, err := w.walk(from)

	return err
}

// SimplePaths returns every simple directed path from→to with at most
// cutoff edges (cutoff <= 0: unbounded). Paths are vertex sequences in
// discovery order. A path from a vertex to itself is never reported.
//
// Errors: ErrGraphNil, ErrUndirectedGraph, ErrVertexNotFound, ErrNeighborFetch.
func SimplePaths(g *core.Graph, from, to string, cutoff int) ([][]string, error) {
	var paths [][]string
	err := enumerate(g, "SimplePaths", from, to, cutoff, func(p []string) bool {
		paths = append(paths, append([]string(nil), p...))
		return true
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// CountSimplePaths counts the paths SimplePaths would return without storing them.
func CountSimplePaths(g *core.Graph, from, to string, cutoff int) (int, error) {
	n := 0
	err := enumerate(g, "CountSimplePaths", from, to, cutoff, func([]string) bool {
		n++
		return true
	})

	return n, err
}

// FindPath returns the first directed path from→to in DFS discovery order.
// Vertices are visited at most once, so the path is simple.
//
// Errors: ErrNoPath when to is unreachable (or from == to), ErrGraphNil,
// ErrUndirectedGraph, ErrVertexNotFound, ErrNeighborFetch.
// Complexity: O(V + E).
func FindPath(g *core.Graph, from, to string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dfs: FindPath: %w", ErrUndirectedGraph)
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return nil, fmt.Errorf("dfs: FindPath(%q, %q): %w", from, to, ErrVertexNotFound)
	}

	visited := map[string]bool{from: true}
	var stack []string
	var visit func(id string) (bool, error)
	visit = func(id string) (bool, error) {
		stack = append(stack, id)
		nbs, err := g.Neighbors(id)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, e := range nbs {
			if e.To == to {
				stack = append(stack, to)
				return true, nil
			}
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			found, err := visit(e.To)
			if err != nil || found {
				return found, err
			}
		}
		stack = stack[:len(stack)-1]

		return false, nil
	}

	if from != to {
		found, err := visit(from)
		if err != nil {
			return nil, err
		}
		if found {
			return stack, nil
		}
	}

	return nil, fmt.Errorf("dfs: FindPath(%q, %q): %w", from, to, ErrNoPath)
}
