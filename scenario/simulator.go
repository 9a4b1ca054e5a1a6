package scenario

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/awpgen/core"
	"github.com/katalvlaran/awpgen/dfs"
	"github.com/katalvlaran/awpgen/rng"
)

// Quantities bounds the size of a single transfer.
type Quantities struct {
	Min int // smallest transfer; values below 1 are treated as 1
	Max int // largest transfer
}

// lowest is the effective minimum transfer quantity.
func (q Quantities) lowest() int {
	if q.Min < 1 {
		return 1
	}

	return q.Min
}

// Outcome is what one simulation pass produced.
type Outcome struct {
	Transfers []Transfer
	Final     map[string]Inventory
	Skipped   []SkippedEdge
}

// Simulate walks every edge of g once and places one transfer per edge.
//
// Edge order: when g is acyclic, edges are sorted (stably) by the
// topological rank of their source, so upstream agents give first;
// otherwise the graph's edge creation order is used.
//
// Per edge: draw an object uniformly. If the sender holds fewer than the
// minimum quantity of it, pick uniformly among the objects the sender does
// hold in at least that quantity. If there are none the edge is skipped and
// recorded in Outcome.Skipped. The quantity is uniform in
// [min, min(held, max)].
//
// initial is not modified. Every debit is re-checked; a negative balance
// returns ErrNegativeInventory. A pass with no transfers returns ErrSimulation.
func Simulate(src *rng.Source, g *core.Graph, objects []string, initial map[string]Inventory, q Quantities) (*Outcome, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("scenario: Simulate: no object types: %w", ErrSimulation)
	}
	edges, err := processingOrder(g)
	if err != nil {
		return nil, err
	}

	inv := make(map[string]Inventory, len(initial))
	for name, held := range initial {
		inv[name] = held.Clone()
	}

	out := &Outcome{}
	low := q.lowest()
	qualifying := make([]string, 0, len(objects))
	for _, e := range edges {
		sender, ok := inv[e.From]
		if !ok {
			return nil, fmt.Errorf("scenario: Simulate: sender %q: %w", e.From, ErrUnknownAgent)
		}
		receiver, ok := inv[e.To]
		if !ok {
			return nil, fmt.Errorf("scenario: Simulate: receiver %q: %w", e.To, ErrUnknownAgent)
		}

		obj := rng.Pick(src, objects)
		if sender[obj] < low {
			qualifying = qualifying[:0]
			for _, o := range objects {
				if sender[o] >= low {
					qualifying = append(qualifying, o)
				}
			}
			if len(qualifying) == 0 {
				out.Skipped = append(out.Skipped, SkippedEdge{From: e.From, To: e.To, Reason: SkipNoQualifyingObject})
				continue
			}
			obj = rng.Pick(src, qualifying)
		}

		hi := sender[obj]
		if q.Max > 0 && q.Max < hi {
			hi = q.Max
		}
		qty := src.IntRange(low, hi)

		sender[obj] -= qty
		receiver[obj] += qty
		if sender[obj] < 0 {
			return nil, fmt.Errorf("scenario: Simulate: %s gives %d %s: %w", e.From, qty, obj, ErrNegativeInventory)
		}
		out.Transfers = append(out.Transfers, Transfer{
			From:     e.From,
			To:       e.To,
			Object:   obj,
			Quantity: qty,
			Step:     len(out.Transfers),
		})
	}

	if len(out.Transfers) == 0 {
		return nil, fmt.Errorf("scenario: Simulate: %d edges, %d skipped: %w", len(edges), len(out.Skipped), ErrSimulation)
	}
	out.Final = inv

	return out, nil
}

// processingOrder returns g's edges in simulation order.
func processingOrder(g *core.Graph) ([]*core.Edge, error) {
	if g == nil {
		return nil, fmt.Errorf("scenario: Simulate: nil graph: %w", ErrSimulation)
	}
	edges := g.Edges()
	if !g.Directed() {
		return edges, nil
	}
	rank, err := dfs.Rank(g)
	if err != nil {
		// Cyclic graphs have no topological order; keep creation order.
		return edges, nil
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return rank[edges[i].From] < rank[edges[j].From]
	})

	return edges, nil
}

// BuildAgents pairs initial and final inventories per name, in names order.
// The maps are copied.
func BuildAgents(names []string, initial, final map[string]Inventory) []Agent {
	out := make([]Agent, len(names))
	for i, n := range names {
		out[i] = Agent{Name: n, Initial: initial[n].Clone(), Final: final[n].Clone()}
	}

	return out
}
