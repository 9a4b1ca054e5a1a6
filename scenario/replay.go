package scenario

import (
	"fmt"
)

// Replay returns every agent's inventory after applying transfers[0..step].
// step == -1 yields the initial state. The scenario is not modified.
//
// Errors: ErrStepOutOfRange, ErrUnknownAgent, ErrNegativeInventory.
// Complexity: O(A·O + step).
func Replay(s *Scenario, step int) (map[string]Inventory, error) {
	if step < -1 || step >= len(s.Transfers) {
		return nil, fmt.Errorf("scenario: Replay(%d) of %d transfers: %w", step, len(s.Transfers), ErrStepOutOfRange)
	}
	state := s.Initial()
	for _, t := range s.Transfers[:step+1] {
		if err := apply(state, t); err != nil {
			return nil, fmt.Errorf("scenario: Replay step %d: %w", t.Step, err)
		}
	}

	return state, nil
}

// apply debits and credits one transfer, refusing negative balances.
func apply(state map[string]Inventory, t Transfer) error {
	from, ok := state[t.From]
	if !ok {
		return fmt.Errorf("%q: %w", t.From, ErrUnknownAgent)
	}
	to, ok := state[t.To]
	if !ok {
		return fmt.Errorf("%q: %w", t.To, ErrUnknownAgent)
	}
	if from[t.Object] < t.Quantity {
		return fmt.Errorf("%s holds %d %s, gives %d: %w", t.From, from[t.Object], t.Object, t.Quantity, ErrNegativeInventory)
	}
	from[t.Object] -= t.Quantity
	to[t.Object] += t.Quantity

	return nil
}

// Validate checks every scenario invariant: agent and object consistency,
// transfer well-formedness, contiguous steps, non-negativity of every replay
// prefix, Final equal to the full replay, and per-object conservation.
// Violations wrap ErrInvalidScenario.
func Validate(s *Scenario) error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("scenario %s: %s: %w", s.ID, fmt.Sprintf(format, args...), ErrInvalidScenario)
	}

	if len(s.Agents) < 2 {
		return bad("%d agents", len(s.Agents))
	}
	objects := make(map[string]struct{}, len(s.ObjectTypes))
	for _, o := range s.ObjectTypes {
		if _, dup := objects[o]; dup || o == "" {
			return bad("object type %q repeated or empty", o)
		}
		objects[o] = struct{}{}
	}
	names := make(map[string]struct{}, len(s.Agents))
	for _, a := range s.Agents {
		if _, dup := names[a.Name]; dup || a.Name == "" {
			return bad("agent %q repeated or empty", a.Name)
		}
		names[a.Name] = struct{}{}
		for _, inv := range []Inventory{a.Initial, a.Final} {
			if len(inv) != len(objects) {
				return bad("agent %s has %d object keys, want %d", a.Name, len(inv), len(objects))
			}
			for o, n := range inv {
				if _, ok := objects[o]; !ok {
					return bad("agent %s holds unknown object %q", a.Name, o)
				}
				if n < 0 {
					return bad("agent %s holds %d %s", a.Name, n, o)
				}
			}
		}
	}

	for i, t := range s.Transfers {
		switch {
		case t.Step != i:
			return bad("transfer %d has step %d", i, t.Step)
		case t.From == t.To:
			return bad("step %d transfers to itself", i)
		case t.Quantity <= 0:
			return bad("step %d quantity %d", i, t.Quantity)
		}
		if _, ok := objects[t.Object]; !ok {
			return bad("step %d moves unknown object %q", i, t.Object)
		}
	}

	state := s.Initial()
	for _, t := range s.Transfers {
		if err := apply(state, t); err != nil {
			return bad("replay step %d: %v", t.Step, err)
		}
	}
	for _, a := range s.Agents {
		for o, n := range a.Final {
			if state[a.Name][o] != n {
				return bad("agent %s final %s=%d, replay gives %d", a.Name, o, n, state[a.Name][o])
			}
		}
	}

	for o := range objects {
		before, after := 0, 0
		for _, a := range s.Agents {
			before += a.Initial[o]
			after += a.Final[o]
		}
		if before != after {
			return bad("%s not conserved: %d → %d", o, before, after)
		}
	}

	return nil
}
