package answer

import (
	"fmt"

	"github.com/katalvlaran/awpgen/bfs"
	"github.com/katalvlaran/awpgen/core"
	"github.com/katalvlaran/awpgen/scenario"
)

// TransferGraph returns the weighted digraph of object movements: one
// vertex per scenario agent (in agent order) and an edge u→v weighted by
// the total quantity of object u gave v. Edges follow first-transfer order.
//
// Repeated transfers of one object over the same ordered pair add up on a
// single edge. The builders emit each ordered pair once and the simulator
// places one transfer per edge, so generated scenarios never repeat a pair.
//
// Complexity: O(A + T·deg).
func TransferGraph(s *scenario.Scenario, object string) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, a := range s.Agents {
		if err := g.AddVertex(a.Name); err != nil {
			return nil, fmt.Errorf("answer: TransferGraph: %w", err)
		}
	}

	sums := make(map[[2]string]int64)
	var order [][2]string
	for _, t := range s.Transfers {
		if t.Object != object {
			continue
		}
		key := [2]string{t.From, t.To}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += int64(t.Quantity)
	}
	for _, key := range order {
		if _, err := g.AddEdge(key[0], key[1], sums[key]); err != nil {
			return nil, fmt.Errorf("answer: TransferGraph %s→%s: %w", key[0], key[1], err)
		}
	}

	return g, nil
}

// edgeWeight returns the weight of the u→v edge in a simple digraph.
func edgeWeight(g *core.Graph, u, v string) (int64, bool) {
	nbs, err := g.Neighbors(u)
	if err != nil {
		return 0, false
	}
	for _, e := range nbs {
		if e.To == v {
			return e.Weight, true
		}
	}

	return 0, false
}

// ReachablePairs lists every ordered pair (u, v), u ≠ v, such that object
// can travel from u to v along transfers, in agent order.
func ReachablePairs(s *scenario.Scenario, object string) ([][2]string, error) {
	g, err := TransferGraph(s, object)
	if err != nil {
		return nil, err
	}

	var pairs [][2]string
	for _, u := range g.Vertices() {
		res, err := bfs.BFS(g, u)
		if err != nil {
			return nil, fmt.Errorf("answer: ReachablePairs: %w", err)
		}
		for _, v := range res.Order {
			if v != u {
				pairs = append(pairs, [2]string{u, v})
			}
		}
	}

	return pairs, nil
}

// onChain reports whether id lies on a simple path of at least two edges.
// Every such path contains a two-edge sub-path through id, so checking
// the three two-edge shapes around id is exact.
func onChain(g *core.Graph, id string) (bool, error) {
	succ, err := g.NeighborIDs(id)
	if err != nil {
		return false, err
	}
	pred, err := g.Predecessors(id)
	if err != nil {
		return false, err
	}

	// pred → id → succ
	for _, p := range pred {
		for _, s := range succ {
			if p != s {
				return true, nil
			}
		}
	}
	// id → s → w
	for _, s := range succ {
		next, err := g.NeighborIDs(s)
		if err != nil {
			return false, err
		}
		for _, w := range next {
			if w != id {
				return true, nil
			}
		}
	}
	// u → p → id
	for _, p := range pred {
		prev, err := g.Predecessors(p)
		if err != nil {
			return false, err
		}
		for _, u := range prev {
			if u != id {
				return true, nil
			}
		}
	}

	return false, nil
}
