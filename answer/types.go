package answer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget reports a target that does not fit the scenario or type.
	ErrInvalidTarget = errors.New("answer: invalid target")

	// ErrUnreachableTarget reports a path question whose pair has no path.
	ErrUnreachableTarget = errors.New("answer: target unreachable")

	// ErrUnknownType reports an unrecognized question type.
	ErrUnknownType = errors.New("answer: unknown question type")
)

// QuestionType enumerates the question categories.
type QuestionType int

const (
	InitialCount QuestionType = iota
	FinalCount
	Difference
	TransferAmount
	TotalTransferred
	TotalReceived
	SumAll
	ComparativeMore
	ComparativeDifference
	TemporalAfterStep
	ConditionalIfGaveMore
	MultiAgentCombined
	RatioFraction
	RatioPercentage
	MultiHopIndirect
	MultiHopNetFlow
	MultiHopPathCount
	MultiHopMultiStep

	typeCount int = iota
)

var typeNames = [...]string{
	InitialCount:          "initial_count",
	FinalCount:            "final_count",
	Difference:            "difference",
	TransferAmount:        "transfer_amount",
	TotalTransferred:      "total_transferred",
	TotalReceived:         "total_received",
	SumAll:                "sum_all",
	ComparativeMore:       "comparative_more",
	ComparativeDifference: "comparative_difference",
	TemporalAfterStep:     "temporal_after_step",
	ConditionalIfGaveMore: "conditional_if_gave_more",
	MultiAgentCombined:    "multi_agent_combined",
	RatioFraction:         "ratio_fraction",
	RatioPercentage:       "ratio_percentage",
	MultiHopIndirect:      "multi_hop_indirect",
	MultiHopNetFlow:       "multi_hop_net_flow",
	MultiHopPathCount:     "multi_hop_path_count",
	MultiHopMultiStep:     "multi_hop_multi_step",
}

// Types returns every question type in declaration order.
func Types() []QuestionType {
	out := make([]QuestionType, typeCount)
	for i := range out {
		out[i] = QuestionType(i)
	}

	return out
}

// String returns the snake_case tag.
func (t QuestionType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("QuestionType(%d)", int(t))
	}

	return typeNames[t]
}

// Valid reports whether t is a declared type.
func (t QuestionType) Valid() bool { return t >= 0 && int(t) < typeCount }

// ParseType resolves a tag to its QuestionType.
func ParseType(s string) (QuestionType, error) {
	for i, n := range typeNames {
		if n == s {
			return QuestionType(i), nil
		}
	}

	return 0, fmt.Errorf("answer: ParseType(%q): %w", s, ErrUnknownType)
}

// MarshalText implements encoding.TextMarshaler.
func (t QuestionType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("answer: MarshalText(%d): %w", int(t), ErrUnknownType)
	}

	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *QuestionType) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// Category groups question types.
type Category int

const (
	Basic Category = iota
	Advanced
	MultiHop
)

// String returns the category tag.
func (c Category) String() string {
	switch c {
	case Basic:
		return "basic"
	case Advanced:
		return "advanced"
	case MultiHop:
		return "multi_hop"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Category returns the category of t.
func (t QuestionType) Category() Category {
	switch {
	case t >= MultiHopIndirect:
		return MultiHop
	case t >= ComparativeMore:
		return Advanced
	default:
		return Basic
	}
}

// Target selects what a question asks about. Which fields are read depends
// on the type:
//
//	Agent               every type except sum_all
//	Object              every type
//	Secondary           transfer_amount, comparative_*, conditional_if_gave_more,
//	                    multi_hop_indirect, multi_hop_path_count (the path target)
//	Agents              multi_agent_combined
//	Step                temporal_after_step (0-based, inclusive)
//	Extra               conditional_if_gave_more
type Target struct {
	Agent     string   `json:"agent,omitempty" yaml:"agent,omitempty"`
	Object    string   `json:"object" yaml:"object"`
	Secondary string   `json:"secondary_agent,omitempty" yaml:"secondary_agent,omitempty"`
	Agents    []string `json:"agents,omitempty" yaml:"agents,omitempty"`
	Step      int      `json:"step,omitempty" yaml:"step,omitempty"`
	Extra     int      `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// NeedsSecondary reports whether t reads Target.Secondary.
func (t QuestionType) NeedsSecondary() bool {
	switch t {
	case TransferAmount, ComparativeMore, ComparativeDifference, ConditionalIfGaveMore,
		MultiHopIndirect, MultiHopPathCount:
		return true
	default:
		return false
	}
}
