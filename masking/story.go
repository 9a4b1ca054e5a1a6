package masking

import (
	"github.com/katalvlaran/awpgen/scenario"
)

// vagueScale maps an upper bound to its qualifier, ascending.
var vagueScale = []struct {
	max   int
	label string
}{
	{0, "no"},
	{1, "a"},
	{3, "a few"},
	{7, "several"},
	{15, "many"},
}

// Vague returns the qualifier standing in for a hidden count.
func Vague(count int) string {
	for _, v := range vagueScale {
		if count <= v.max {
			return v.label
		}
	}

	return "numerous"
}

// Story returns the unmasked facts of s: non-zero initial holdings in agent
// and object order, then one Movement per transfer in step order.
func Story(s *scenario.Scenario) []Fact {
	facts := make([]Fact, 0, len(s.Agents)*len(s.ObjectTypes)+len(s.Transfers))
	for _, a := range s.Agents {
		for _, o := range s.ObjectTypes {
			if n := a.Initial[o]; n > 0 {
				facts = append(facts, Fact{Kind: Holding, Agent: a.Name, Object: o, Quantity: n})
			}
		}
	}
	for _, t := range s.Transfers {
		facts = append(facts, Fact{
			Kind:     Movement,
			Agent:    t.From,
			Other:    t.To,
			Object:   t.Object,
			Quantity: t.Quantity,
			Step:     t.Step,
		})
	}

	return facts
}

// holdingIndex returns the index of the Holding fact of (agent, object), or -1.
func holdingIndex(facts []Fact, agent, object string) int {
	for i, f := range facts {
		if f.Kind == Holding && f.Agent == agent && f.Object == object {
			return i
		}
	}

	return -1
}

// movementIndex returns the index of the Movement fact at step, or -1.
func movementIndex(facts []Fact, step int) int {
	for i, f := range facts {
		if f.Kind == Movement && f.Step == step {
			return i
		}
	}

	return -1
}

// hide marks facts[i] hidden and drops its value.
func hide(facts []Fact, i int) {
	facts[i].Status = Hidden
	facts[i].Quantity = 0
}
