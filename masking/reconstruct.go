package masking

import (
	"fmt"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/scenario"
)

type holdingKey struct{ agent, object string }

// move is a transfer as far as the stated facts pin it down.
type move struct {
	from, to, object string
	qty              int
	known            bool
	percent          int
	hasShare         bool
}

// solver resolves unknown values from stated facts.
type solver struct {
	agents  map[string]struct{}
	objects map[string]struct{}
	initial map[holdingKey]int
	unknown map[holdingKey]bool
	moves   []*move
	comps   []Fact
	after   []Fact
}

// Reconstruct rebuilds a scenario from the stated facts of p. Hidden facts
// contribute structure only (which holding or transfer exists), never values.
// Holdings that no fact mentions are zero.
//
// Errors: ErrUnsolvable when a value cannot be pinned down uniquely, when
// stated facts contradict each other, or when the replay goes negative.
func Reconstruct(p Presentation) (*scenario.Scenario, error) {
	sv, err := newSolver(p)
	if err != nil {
		return nil, err
	}
	if err := sv.solve(); err != nil {
		return nil, err
	}

	return sv.scenario(p)
}

// Verify reconstructs p and checks that eng derives q's stored answer from it.
func Verify(p Presentation, q Question, eng *answer.Engine) error {
	rec, err := Reconstruct(p)
	if err != nil {
		return err
	}
	got, err := eng.Compute(rec, q.Type, q.Target)
	if err != nil {
		return fmt.Errorf("masking: Verify %s: %v: %w", q.Type, err, ErrUnsolvable)
	}
	if got != q.Answer {
		return fmt.Errorf("masking: Verify %s: reconstructed %s, stored %s: %w", q.Type, got, q.Answer, ErrUnsolvable)
	}

	return nil
}

func unsolvable(format string, args ...any) error {
	return fmt.Errorf("masking: %s: %w", fmt.Sprintf(format, args...), ErrUnsolvable)
}

func newSolver(p Presentation) (*solver, error) {
	sv := &solver{
		agents:  make(map[string]struct{}, len(p.Agents)),
		objects: make(map[string]struct{}, len(p.Objects)),
		initial: make(map[holdingKey]int),
		unknown: make(map[holdingKey]bool),
	}
	for _, a := range p.Agents {
		sv.agents[a] = struct{}{}
	}
	for _, o := range p.Objects {
		sv.objects[o] = struct{}{}
	}

	steps := make(map[int]*move)
	shares := make(map[int]Fact)
	for _, f := range p.Facts {
		if _, ok := sv.agents[f.Agent]; !ok {
			return nil, unsolvable("%s fact names unknown agent %q", f.Kind, f.Agent)
		}
		if _, ok := sv.objects[f.Object]; !ok {
			return nil, unsolvable("%s fact names unknown object %q", f.Kind, f.Object)
		}
		if f.Kind == Movement || f.Kind == Share || f.Kind == Comparison {
			if _, ok := sv.agents[f.Other]; !ok || f.Other == f.Agent {
				return nil, unsolvable("%s fact of %s names counterpart %q", f.Kind, f.Agent, f.Other)
			}
		}
		k := holdingKey{f.Agent, f.Object}
		switch f.Kind {
		case Holding:
			if f.Status == Hidden {
				sv.unknown[k] = true
			} else {
				sv.initial[k] = f.Quantity
			}
		case Movement:
			if _, dup := steps[f.Step]; dup {
				return nil, unsolvable("two transfers at step %d", f.Step)
			}
			steps[f.Step] = &move{from: f.Agent, to: f.Other, object: f.Object, qty: f.Quantity, known: f.Status == Stated}
		case Share:
			if f.Status == Stated {
				shares[f.Step] = f
			}
		case Comparison:
			if f.Status == Stated {
				sv.comps = append(sv.comps, f)
			}
		case HoldingAfter:
			if f.Status == Stated {
				sv.after = append(sv.after, f)
			}
		}
	}

	sv.moves = make([]*move, len(steps))
	for step, m := range steps {
		if step < 0 || step >= len(steps) {
			return nil, unsolvable("transfer steps are not contiguous (step %d of %d)", step, len(steps))
		}
		if sh, ok := shares[step]; ok {
			if sh.Agent != m.from || sh.Other != m.to || sh.Object != m.object {
				return nil, unsolvable("share at step %d does not match its transfer", step)
			}
			m.percent, m.hasShare = sh.Percent, true
		}
		sv.moves[step] = m
	}

	return sv, nil
}

// value returns the initial holding of k if known. Unmentioned holdings are zero.
func (sv *solver) value(k holdingKey) (int, bool) {
	if n, ok := sv.initial[k]; ok {
		return n, true
	}

	return 0, !sv.unknown[k]
}

// before returns k's holding just before step, if every input is known.
func (sv *solver) before(k holdingKey, step int) (int, bool) {
	n, ok := sv.value(k)
	if !ok {
		return 0, false
	}
	for _, m := range sv.moves[:step] {
		if m.object != k.object || (m.from != k.agent && m.to != k.agent) {
			continue
		}
		if !m.known {
			return 0, false
		}
		if m.from == k.agent {
			n -= m.qty
		} else {
			n += m.qty
		}
	}

	return n, true
}

// solve propagates stated facts until nothing changes.
func (sv *solver) solve() error {
	for progress := true; progress; {
		progress = false

		for _, c := range sv.comps {
			k := holdingKey{c.Agent, c.Object}
			if _, ok := sv.value(k); ok {
				continue
			}
			if ref, ok := sv.value(holdingKey{c.Other, c.Object}); ok {
				sv.setInitial(k, ref+c.Offset)
				progress = true
			}
		}

		for _, h := range sv.after {
			k := holdingKey{h.Agent, h.Object}
			if _, ok := sv.value(k); ok || h.Step < 0 || h.Step >= len(sv.moves) {
				continue
			}
			if net, ok := sv.netUntil(k, h.Step); ok {
				sv.setInitial(k, h.Quantity-net)
				progress = true
			}
		}

		for step, m := range sv.moves {
			if m.known || !m.hasShare {
				continue
			}
			pre, ok := sv.before(holdingKey{m.from, m.object}, step)
			if !ok {
				continue
			}
			inv := inversePercent(m.percent, pre)
			if len(inv) != 1 {
				return unsolvable("%d%% of %d is ambiguous at step %d", m.percent, pre, step)
			}
			m.qty, m.known = inv[0], true
			progress = true
		}
	}

	for k := range sv.unknown {
		if _, ok := sv.initial[k]; !ok {
			return unsolvable("initial %s of %s unresolved", k.object, k.agent)
		}
	}
	for step, m := range sv.moves {
		if !m.known {
			return unsolvable("quantity at step %d unresolved", step)
		}
	}

	return sv.consistent()
}

func (sv *solver) setInitial(k holdingKey, n int) {
	sv.initial[k] = n
}

// netUntil sums k's received minus given over steps [0, step].
func (sv *solver) netUntil(k holdingKey, step int) (int, bool) {
	net := 0
	for _, m := range sv.moves[:step+1] {
		if m.object != k.object || (m.from != k.agent && m.to != k.agent) {
			continue
		}
		if !m.known {
			return 0, false
		}
		if m.from == k.agent {
			net -= m.qty
		} else {
			net += m.qty
		}
	}

	return net, true
}

// consistent rechecks every stated relation against the resolved values.
func (sv *solver) consistent() error {
	for _, c := range sv.comps {
		a, _ := sv.value(holdingKey{c.Agent, c.Object})
		b, _ := sv.value(holdingKey{c.Other, c.Object})
		if a-b != c.Offset {
			return unsolvable("%s vs %s: offset %d, resolved %d", c.Agent, c.Other, c.Offset, a-b)
		}
	}
	for _, h := range sv.after {
		k := holdingKey{h.Agent, h.Object}
		if h.Step < 0 || h.Step >= len(sv.moves) {
			return unsolvable("holding after step %d of %d", h.Step, len(sv.moves))
		}
		n, _ := sv.value(k)
		net, _ := sv.netUntil(k, h.Step)
		if n+net != h.Quantity {
			return unsolvable("%s holds %d after step %d, resolved %d", h.Agent, h.Quantity, h.Step, n+net)
		}
	}
	for step, m := range sv.moves {
		if !m.hasShare {
			continue
		}
		pre, _ := sv.before(holdingKey{m.from, m.object}, step)
		if answer.RoundPercent(m.qty, pre) != m.percent {
			return unsolvable("step %d: %d of %d is not %d%%", step, m.qty, pre, m.percent)
		}
	}

	return nil
}

// scenario assembles the resolved values and replays them.
func (sv *solver) scenario(p Presentation) (*scenario.Scenario, error) {
	rec := &scenario.Scenario{
		ID:          "reconstructed",
		ObjectTypes: append([]string(nil), p.Objects...),
		Agents:      make([]scenario.Agent, len(p.Agents)),
		Transfers:   make([]scenario.Transfer, len(sv.moves)),
	}
	for i, name := range p.Agents {
		inv := make(scenario.Inventory, len(p.Objects))
		for _, o := range p.Objects {
			n, _ := sv.value(holdingKey{name, o})
			if n < 0 {
				return nil, unsolvable("%s starts with %d %s", name, n, o)
			}
			inv[o] = n
		}
		rec.Agents[i] = scenario.Agent{Name: name, Initial: inv}
	}
	for step, m := range sv.moves {
		rec.Transfers[step] = scenario.Transfer{From: m.from, To: m.to, Object: m.object, Quantity: m.qty, Step: step}
	}

	final, err := scenario.Replay(rec, len(rec.Transfers)-1)
	if err != nil {
		return nil, unsolvable("replay: %v", err)
	}
	for i := range rec.Agents {
		rec.Agents[i].Final = final[rec.Agents[i].Name]
	}

	return rec, nil
}
