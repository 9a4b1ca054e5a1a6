package question

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

// target draws a target shaped for qt. It may still be rejected by the
// answer engine (ties, unreachable pairs); Sample redraws then.
func (s *Sampler) target(src *rng.Source, sc *scenario.Scenario, qt answer.QuestionType) (answer.Target, error) {
	names := sc.Names()
	if len(names) < 2 || len(sc.ObjectTypes) == 0 {
		return answer.Target{}, fmt.Errorf("question: %s: %d agents, %d objects: %w",
			qt, len(names), len(sc.ObjectTypes), answer.ErrInvalidTarget)
	}
	tg := answer.Target{Agent: rng.Pick(src, names), Object: rng.Pick(src, sc.ObjectTypes)}
	other := func() string {
		rest := slices.DeleteFunc(slices.Clone(names), func(n string) bool { return n == tg.Agent })
		return rng.Pick(src, rest)
	}

	switch qt {
	case answer.InitialCount, answer.FinalCount, answer.Difference,
		answer.TotalTransferred, answer.TotalReceived,
		answer.RatioFraction, answer.RatioPercentage,
		answer.MultiHopNetFlow, answer.MultiHopMultiStep:
	case answer.SumAll:
		tg.Agent = ""
	case answer.TransferAmount:
		if len(sc.Transfers) == 0 {
			return answer.Target{}, fmt.Errorf("question: %s: no transfers: %w", qt, answer.ErrInvalidTarget)
		}
		t := rng.Pick(src, sc.Transfers)
		tg = answer.Target{Agent: t.From, Secondary: t.To, Object: t.Object}
	case answer.ComparativeMore, answer.ComparativeDifference:
		tg.Secondary = other()
	case answer.TemporalAfterStep:
		if len(sc.Transfers) == 0 {
			return answer.Target{}, fmt.Errorf("question: %s: no transfers: %w", qt, answer.ErrInvalidTarget)
		}
		tg.Step = src.IntRange(0, len(sc.Transfers)-1)
	case answer.ConditionalIfGaveMore:
		a, _ := sc.Agent(tg.Agent)
		hi := min(s.extraMax, a.Final[tg.Object])
		if hi < s.extraMin {
			return answer.Target{}, fmt.Errorf("question: %s: %s holds %d: %w", qt, tg.Agent, a.Final[tg.Object], answer.ErrInvalidTarget)
		}
		tg.Secondary = other()
		tg.Extra = src.IntRange(s.extraMin, hi)
	case answer.MultiAgentCombined:
		k := min(s.combinedAgents, len(names))
		picked := rng.Sample(src, names, k)
		// Keep scenario order so the same group always reads the same way.
		tg.Agents = slices.DeleteFunc(slices.Clone(names), func(n string) bool { return !slices.Contains(picked, n) })
		tg.Agent = tg.Agents[0]
	case answer.MultiHopIndirect, answer.MultiHopPathCount:
		objects := slices.Clone(sc.ObjectTypes)
		rng.Shuffle(src, objects)
		for _, obj := range objects {
			pairs, err := answer.ReachablePairs(sc, obj)
			if err != nil {
				return answer.Target{}, err
			}
			if len(pairs) == 0 {
				continue
			}
			p := rng.Pick(src, pairs)
			return answer.Target{Agent: p[0], Secondary: p[1], Object: obj}, nil
		}
		return answer.Target{}, fmt.Errorf("question: %s: no object travels anywhere: %w", qt, answer.ErrUnreachableTarget)
	default:
		return answer.Target{}, fmt.Errorf("question: target(%s): %w", qt, answer.ErrUnknownType)
	}

	return tg, nil
}
