package masking

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

// rewrite applies one pattern to a copy of the unmasked facts.
type rewrite func(src *rng.Source, s *scenario.Scenario, q Question, facts []Fact) ([]Fact, error)

// rewriteFor is the exhaustive pattern dispatch.
func (e *Engine) rewriteFor(p Pattern) (rewrite, string, error) {
	switch p {
	case Unmasked:
		return func(_ *rng.Source, _ *scenario.Scenario, _ Question, f []Fact) ([]Fact, error) { return f, nil }, "", nil
	case MaskInitialCount:
		return maskInitialCount, "Initial quantity hidden with vague phrasing.", nil
	case ComparativeChain:
		return e.comparativeChain, "Must reason through comparative chain.", nil
	case PercentageRatio:
		return percentageRatio, "Transfer amount expressed as a percentage.", nil
	}

	return nil, "", fmt.Errorf("masking: %w: %d", ErrUnknownPattern, int(p))
}

// candidates returns the target agent (if any) followed by the remaining
// agents in random order.
func candidates(src *rng.Source, s *scenario.Scenario, target string) []string {
	var rest []string
	for _, n := range s.Names() {
		if n != target {
			rest = append(rest, n)
		}
	}
	rng.Shuffle(src, rest)
	if _, ok := s.Agent(target); ok {
		return append([]string{target}, rest...)
	}

	return rest
}

// maskInitialCount hides the initial holding of (agent, object) and states
// the holding right after that agent's first transfer of the object. The
// question's target agent is tried first.
func maskInitialCount(src *rng.Source, s *scenario.Scenario, q Question, facts []Fact) ([]Fact, error) {
	obj := q.Target.Object
	for _, name := range candidates(src, s, q.Target.Agent) {
		hi := holdingIndex(facts, name, obj)
		if hi < 0 {
			continue
		}
		first := -1
		for _, t := range s.Transfers {
			if t.Object == obj && (t.From == name || t.To == name) {
				first = t.Step
				break
			}
		}
		if first < 0 {
			continue
		}
		// The reconstruction replays transfers up to first; all must be stated.
		if mi := movementIndex(facts, first); mi < 0 || facts[mi].Status != Stated {
			continue
		}
		state, err := scenario.Replay(s, first)
		if err != nil {
			return nil, err
		}

		facts[hi].Vague = Vague(facts[hi].Quantity)
		hide(facts, hi)
		facts = append(facts, Fact{
			Kind:     HoldingAfter,
			Agent:    name,
			Object:   obj,
			Quantity: state[name][obj],
			Step:     first,
		})

		return facts, nil
	}

	return nil, fmt.Errorf("masking: %s on %s: no agent holds it and trades it: %w", MaskInitialCount, obj, ErrMaskingInfeasible)
}

// comparativeChain states one anchor holding absolutely and chains the
// others as offsets from their predecessor.
func (e *Engine) comparativeChain(src *rng.Source, s *scenario.Scenario, q Question, facts []Fact) ([]Fact, error) {
	obj := q.Target.Object
	var chain []string
	for _, name := range candidates(src, s, q.Target.Agent) {
		if hi := holdingIndex(facts, name, obj); hi >= 0 && facts[hi].Status == Stated {
			chain = append(chain, name)
		}
		if len(chain) == e.chainLength {
			break
		}
	}
	if len(chain) < 2 {
		return nil, fmt.Errorf("masking: %s on %s: %d holders: %w", ComparativeChain, obj, len(chain), ErrMaskingInfeasible)
	}
	rng.Shuffle(src, chain)

	holding := func(name string) int { return facts[holdingIndex(facts, name, obj)].Quantity }
	comps := make([]Fact, 0, len(chain)-1)
	for i := 1; i < len(chain); i++ {
		comps = append(comps, Fact{
			Kind:   Comparison,
			Agent:  chain[i],
			Other:  chain[i-1],
			Object: obj,
			Offset: holding(chain[i]) - holding(chain[i-1]),
		})
	}
	for _, name := range chain[1:] {
		hide(facts, holdingIndex(facts, name, obj))
	}

	at := 0
	for i, f := range facts {
		if f.Kind == Holding {
			at = i + 1
		}
	}

	return slices.Insert(facts, at, comps...), nil
}

// percentageRatio replaces one transfer quantity with a percentage of the
// sender's pre-transfer holding. Only transfers whose percentage inverts to
// a unique quantity qualify; the target object is preferred.
func percentageRatio(src *rng.Source, s *scenario.Scenario, q Question, facts []Fact) ([]Fact, error) {
	type option struct {
		step, percent int
	}
	var preferred, other []option

	state, err := scenario.Replay(s, -1)
	if err != nil {
		return nil, err
	}
	for _, t := range s.Transfers {
		pre := state[t.From][t.Object]
		pct := answer.RoundPercent(t.Quantity, pre)
		mi := movementIndex(facts, t.Step)
		if mi >= 0 && facts[mi].Status == Stated && len(inversePercent(pct, pre)) == 1 {
			o := option{step: t.Step, percent: pct}
			if t.Object == q.Target.Object {
				preferred = append(preferred, o)
			} else {
				other = append(other, o)
			}
		}
		state[t.From][t.Object] -= t.Quantity
		state[t.To][t.Object] += t.Quantity
	}

	pool := preferred
	if len(pool) == 0 {
		pool = other
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("masking: %s: no transfer has a unique percentage: %w", PercentageRatio, ErrMaskingInfeasible)
	}
	pick := rng.Pick(src, pool)

	mi := movementIndex(facts, pick.step)
	share := Fact{
		Kind:    Share,
		Agent:   facts[mi].Agent,
		Other:   facts[mi].Other,
		Object:  facts[mi].Object,
		Percent: pick.percent,
		Step:    pick.step,
	}
	hide(facts, mi)

	return slices.Insert(facts, mi+1, share), nil
}

// inversePercent lists every quantity in [1, pre] that rounds to pct% of pre.
func inversePercent(pct, pre int) []int {
	var out []int
	for x := 1; x <= pre; x++ {
		if answer.RoundPercent(x, pre) == pct {
			out = append(out, x)
		}
	}

	return out
}
