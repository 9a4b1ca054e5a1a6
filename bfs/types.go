package bfs

import (
	"context"
	"errors"
)

var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds the traversal settings.
type BFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Undirected makes every edge traversable in both directions.
	Undirected bool
}

// DefaultOptions returns Background context and directed traversal.
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext sets a cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithUndirected walks the weakly-connected view of a directed graph.
func WithUndirected() Option {
	return func(o *BFSOptions) { o.Undirected = true }
}

// BFSResult holds the outcome of a traversal.
type BFSResult struct {
	// Order lists vertices in visit order.
	Order []string
	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[string]int
}

// Eccentricity returns the largest depth reached.
func (r *BFSResult) Eccentricity() int {
	max := 0
	for _, d := range r.Depth {
		if d > max {
			max = d
		}
	}

	return max
}
