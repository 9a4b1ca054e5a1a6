package masking

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/awpgen/answer"
)

var (
	// ErrMaskingInfeasible reports that a pattern has no valid target.
	// The engine recovers from it by falling back to Unmasked.
	ErrMaskingInfeasible = errors.New("masking: pattern infeasible")

	// ErrUnsolvable reports stated facts that do not determine the scenario,
	// or a reconstructed answer that differs from the stored one.
	ErrUnsolvable = errors.New("masking: facts do not determine the answer")

	// ErrUnknownPattern reports an unrecognized pattern tag.
	ErrUnknownPattern = errors.New("masking: unknown pattern")
)

// Pattern is a masking rewrite. Patterns are mutually exclusive.
type Pattern int

const (
	Unmasked Pattern = iota
	MaskInitialCount
	ComparativeChain
	PercentageRatio

	patternCount int = iota
)

var patternNames = [...]string{
	Unmasked:         "none",
	MaskInitialCount: "mask_initial_count",
	ComparativeChain: "comparative_chain",
	PercentageRatio:  "percentage_ratio",
}

// patternAliases are legacy tags accepted by ParsePattern.
var patternAliases = map[string]Pattern{
	"unmasked":                     Unmasked,
	"comparative_inference_chains": ComparativeChain,
	"percentage_ratio_masking":     PercentageRatio,
}

// Patterns returns every pattern, Unmasked first.
func Patterns() []Pattern {
	out := make([]Pattern, patternCount)
	for i := range out {
		out[i] = Pattern(i)
	}

	return out
}

// String returns the pattern tag.
func (p Pattern) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}

	return patternNames[p]
}

// Valid reports whether p is a declared pattern.
func (p Pattern) Valid() bool { return p >= 0 && int(p) < patternCount }

// ParsePattern resolves a tag or legacy alias.
func ParsePattern(s string) (Pattern, error) {
	for i, n := range patternNames {
		if n == s {
			return Pattern(i), nil
		}
	}
	if p, ok := patternAliases[s]; ok {
		return p, nil
	}

	return 0, fmt.Errorf("masking: ParsePattern(%q): %w", s, ErrUnknownPattern)
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("masking: MarshalText(%d): %w", int(p), ErrUnknownPattern)
	}

	return []byte(patternNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(b []byte) error {
	v, err := ParsePattern(string(b))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// FactKind classifies a Fact.
type FactKind int

const (
	// Holding: Agent holds Quantity of Object at the start.
	Holding FactKind = iota
	// Movement: at Step, Agent gives Quantity of Object to Other.
	Movement
	// HoldingAfter: right after Step, Agent holds Quantity of Object.
	HoldingAfter
	// Comparison: Agent starts with Offset more Object than Other (negative: fewer).
	Comparison
	// Share: at Step, Agent gives Percent% of its current Object to Other.
	Share
)

var factKindNames = [...]string{
	Holding:      "holding",
	Movement:     "transfer",
	HoldingAfter: "holding_after",
	Comparison:   "comparison",
	Share:        "share",
}

// String returns the kind tag.
func (k FactKind) String() string {
	if k < 0 || int(k) >= len(factKindNames) {
		return fmt.Sprintf("FactKind(%d)", int(k))
	}

	return factKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k FactKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FactKind) UnmarshalText(b []byte) error {
	for i, n := range factKindNames {
		if n == string(b) {
			*k = FactKind(i)
			return nil
		}
	}

	return fmt.Errorf("masking: unknown fact kind %q", b)
}

// Status tells whether a renderer may show a fact's value.
type Status int

const (
	Stated Status = iota
	Hidden
)

// String returns "stated" or "hidden".
func (s Status) String() string {
	if s == Hidden {
		return "hidden"
	}

	return "stated"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "stated":
		*s = Stated
	case "hidden":
		*s = Hidden
	default:
		return fmt.Errorf("masking: unknown status %q", b)
	}

	return nil
}

// Fact is one annotated statement of a story. Hidden facts keep their
// structure (who, what, when) but carry no quantity.
type Fact struct {
	Kind     FactKind `json:"kind"`
	Status   Status   `json:"status"`
	Agent    string   `json:"agent"`
	Other    string   `json:"other,omitempty"`
	Object   string   `json:"object"`
	Quantity int      `json:"quantity,omitempty"`
	Offset   int      `json:"offset,omitempty"`
	Percent  int      `json:"percent,omitempty"`
	Step     int      `json:"step,omitempty"`
	Vague    string   `json:"vague,omitempty"`
}

// Query is what a question asks.
type Query struct {
	Type   answer.QuestionType `json:"question_type"`
	Target answer.Target       `json:"target"`
}

// Question is a query with its stored correct answer.
type Question struct {
	Query
	Answer answer.Answer `json:"correct_answer"`
}

// Presentation is the masked story handed to narrative renderers.
type Presentation struct {
	Pattern   Pattern  `json:"pattern"`
	Scrambled bool     `json:"scrambled"`
	Note      string   `json:"note,omitempty"`
	Agents    []string `json:"agents"`
	Objects   []string `json:"objects"`
	Facts     []Fact   `json:"facts"`
	Asked     Query    `json:"asked"`
}

// Stated returns the stated facts in presentation order.
func (p Presentation) Stated() []Fact {
	out := make([]Fact, 0, len(p.Facts))
	for _, f := range p.Facts {
		if f.Status == Stated {
			out = append(out, f)
		}
	}

	return out
}

// Hidden returns the hidden facts in presentation order.
func (p Presentation) Hidden() []Fact {
	var out []Fact
	for _, f := range p.Facts {
		if f.Status == Hidden {
			out = append(out, f)
		}
	}

	return out
}
