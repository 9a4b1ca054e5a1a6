package metrics

import (
	"context"
	"fmt"

	"github.com/katalvlaran/awpgen/bfs"
	"github.com/katalvlaran/awpgen/core"
	"github.com/katalvlaran/awpgen/dfs"
)

// Metrics are the graph statistics stored on a scenario.
type Metrics struct {
	Density         float64 `json:"density" yaml:"density"`
	Diameter        int     `json:"diameter" yaml:"diameter"`
	AvgBranching    float64 `json:"avg_branching" yaml:"avg_branching"`
	CycleCount      int     `json:"cycle_count" yaml:"cycle_count"`
	CycleCountExact bool    `json:"cycle_count_exact" yaml:"cycle_count_exact"`
}

// Option tunes Compute.
type Option func(*options)

type options struct {
	ctx            context.Context
	exactNodeLimit int // exhaustive enumeration up to this many vertices
	cycleCap       int // enumeration cap above exactNodeLimit
}

const (
	// DefaultExactNodeLimit covers every complete digraph the builder allows.
	DefaultExactNodeLimit = 8
	// DefaultCycleCap bounds enumeration on larger graphs.
	DefaultCycleCap = 10000
)

// WithExactNodeLimit sets the vertex count up to which cycles are counted
// exhaustively. Panics if n < 0.
func WithExactNodeLimit(n int) Option {
	if n < 0 {
		panic("metrics: WithExactNodeLimit(n<0)")
	}
	return func(o *options) { o.exactNodeLimit = n }
}

// WithCycleCap sets the enumeration cap used above the exact node limit.
// Panics if k < 1.
func WithCycleCap(k int) Option {
	if k < 1 {
		panic("metrics: WithCycleCap(k<1)")
	}
	return func(o *options) { o.cycleCap = k }
}

// WithContext stops the diameter search once ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Compute derives Metrics from a directed graph.
//
// Complexity: O(V·(V+E)) for the diameter plus the bounded cycle count.
func Compute(g *core.Graph, opts ...Option) (Metrics, error) {
	o := options{ctx: context.Background(), exactNodeLimit: DefaultExactNodeLimit, cycleCap: DefaultCycleCap}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return Metrics{}, fmt.Errorf("metrics: Compute: %w", dfs.ErrGraphNil)
	}

	var m Metrics
	verts := g.Vertices()
	n := len(verts)
	if n >= 2 {
		m.Density = float64(g.EdgeCount()) / float64(n*(n-1))
	}

	branching, sources := 0, 0
	for _, v := range verts {
		_, out, err := g.Degree(v)
		if err != nil {
			return Metrics{}, fmt.Errorf("metrics: Degree(%s): %w", v, err)
		}
		if out > 0 {
			branching += out
			sources++
		}
	}
	if sources > 0 {
		m.AvgBranching = float64(branching) / float64(sources)
	}

	d, err := Diameter(o.ctx, g)
	if err != nil {
		return Metrics{}, err
	}
	m.Diameter = d
	if err := o.ctx.Err(); err != nil {
		return Metrics{}, err
	}

	limit := 0
	if n > o.exactNodeLimit {
		limit = o.cycleCap
	}
	m.CycleCount, m.CycleCountExact, err = dfs.CountSimpleCycles(g, limit)
	if err != nil {
		return Metrics{}, fmt.Errorf("metrics: CountSimpleCycles: %w", err)
	}

	return m, nil
}

// Diameter returns the longest shortest path of the undirected view of g,
// or 0 if that view is disconnected (or has fewer than two vertices).
// It returns ctx.Err() once ctx is done.
func Diameter(ctx context.Context, g *core.Graph) (int, error) {
	verts := g.Vertices()
	diameter := 0
	for _, v := range verts {
		res, err := bfs.BFS(g, v, bfs.WithUndirected(), bfs.WithContext(ctx))
		if err != nil {
			return 0, fmt.Errorf("metrics: BFS(%s): %w", v, err)
		}
		if len(res.Order) != len(verts) {
			return 0, nil
		}
		if e := res.Eccentricity(); e > diameter {
			diameter = e
		}
	}

	return diameter, nil
}
