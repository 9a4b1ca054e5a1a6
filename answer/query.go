package answer

import (
	"fmt"

	"github.com/katalvlaran/awpgen/scenario"
)

// query bundles one Compute call.
type query struct {
	s  *scenario.Scenario
	qt QuestionType
	tg Target
}

func (q query) invalid(format string, args ...any) error {
	return fmt.Errorf("answer: %s(%s/%s): %s: %w", q.qt, q.tg.Agent, q.tg.Object, fmt.Sprintf(format, args...), ErrInvalidTarget)
}

func (q query) unreachable() error {
	return fmt.Errorf("answer: %s(%s→%s, %s): %w", q.qt, q.tg.Agent, q.tg.Secondary, q.tg.Object, ErrUnreachableTarget)
}

// check validates the target fields qt reads.
func (q query) check() error {
	if !q.s.HasObject(q.tg.Object) {
		return q.invalid("unknown object")
	}
	if q.qt != SumAll {
		if _, ok := q.s.Agent(q.tg.Agent); !ok {
			return q.invalid("unknown agent")
		}
	}
	if q.qt.NeedsSecondary() {
		if _, ok := q.s.Agent(q.tg.Secondary); !ok {
			return q.invalid("unknown secondary %q", q.tg.Secondary)
		}
		if q.tg.Secondary == q.tg.Agent {
			return q.invalid("secondary equals agent")
		}
	}

	switch q.qt {
	case TemporalAfterStep:
		if q.tg.Step < 0 || q.tg.Step >= len(q.s.Transfers) {
			return q.invalid("step %d of %d", q.tg.Step, len(q.s.Transfers))
		}
	case ConditionalIfGaveMore:
		if q.tg.Extra <= 0 || q.tg.Extra > q.final(q.tg.Agent) {
			return q.invalid("%s cannot give %d more", q.tg.Agent, q.tg.Extra)
		}
	case MultiAgentCombined:
		if len(q.tg.Agents) < 2 {
			return q.invalid("%d agents combined", len(q.tg.Agents))
		}
		seen := make(map[string]struct{}, len(q.tg.Agents))
		for _, a := range q.tg.Agents {
			if _, ok := q.s.Agent(a); !ok {
				return q.invalid("unknown agent %q", a)
			}
			if _, dup := seen[a]; dup {
				return q.invalid("agent %q repeated", a)
			}
			seen[a] = struct{}{}
		}
	}

	return nil
}

func (q query) initial(name string) int {
	a, _ := q.s.Agent(name)
	return a.Initial[q.tg.Object]
}

func (q query) final(name string) int {
	a, _ := q.s.Agent(name)
	return a.Final[q.tg.Object]
}

func (q query) total() int {
	sum := 0
	for _, a := range q.s.Agents {
		sum += a.Final[q.tg.Object]
	}

	return sum
}

// flow sums quantities of the target object over transfers matching keep.
func (q query) flow(keep func(scenario.Transfer) bool) int {
	sum := 0
	for _, t := range q.s.Transfers {
		if t.Object == q.tg.Object && keep(t) {
			sum += t.Quantity
		}
	}

	return sum
}
