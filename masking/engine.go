package masking

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

// Defaults for a new Engine.
const (
	DefaultMaskingProbability  = 0.9
	DefaultScrambleProbability = 0.7
	DefaultChainLength         = 3
)

// DefaultWeights are the stock pattern weights (Unmasked is never drawn by weight).
func DefaultWeights() map[Pattern]float64 {
	return map[Pattern]float64{
		MaskInitialCount: 0.33,
		ComparativeChain: 0.33,
		PercentageRatio:  0.34,
	}
}

// Engine chooses and applies masking patterns.
type Engine struct {
	maskingProbability  float64
	scrambleProbability float64
	weights             []float64 // indexed by Pattern-1
	chainLength         int
	answers             *answer.Engine
}

// Option tunes an Engine. Constructors panic on meaningless values.
type Option func(*Engine)

func checkProbability(name string, p float64) {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("masking: %s(%v) outside [0,1]", name, p))
	}
}

// WithMaskingProbability sets the chance that a question is masked at all.
func WithMaskingProbability(p float64) Option {
	checkProbability("WithMaskingProbability", p)
	return func(e *Engine) { e.maskingProbability = p }
}

// WithScrambleProbability sets the chance that transfer order is scrambled.
func WithScrambleProbability(p float64) Option {
	checkProbability("WithScrambleProbability", p)
	return func(e *Engine) { e.scrambleProbability = p }
}

// WithPatternWeights replaces the pattern weights. Missing patterns get
// weight 0; Unmasked is ignored. Panics on a negative weight.
func WithPatternWeights(w map[Pattern]float64) Option {
	weights := make([]float64, patternCount-1)
	for p, v := range w {
		if v < 0 {
			panic(fmt.Sprintf("masking: WithPatternWeights(%s=%v)", p, v))
		}
		if p.Valid() && p != Unmasked {
			weights[p-1] = v
		}
	}
	return func(e *Engine) { e.weights = weights }
}

// WithChainLength sets how many agents a comparative chain links. Panics if n < 2.
func WithChainLength(n int) Option {
	if n < 2 {
		panic("masking: WithChainLength(n<2)")
	}
	return func(e *Engine) { e.chainLength = n }
}

// WithAnswerEngine sets the engine Verify recomputes answers with. Panics on nil.
func WithAnswerEngine(a *answer.Engine) Option {
	if a == nil {
		panic("masking: WithAnswerEngine(nil)")
	}
	return func(e *Engine) { e.answers = a }
}

// NewEngine returns an Engine with defaults overridden by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maskingProbability:  DefaultMaskingProbability,
		scrambleProbability: DefaultScrambleProbability,
		chainLength:         DefaultChainLength,
		answers:             answer.NewEngine(),
	}
	WithPatternWeights(DefaultWeights())(e)
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Plain returns the unmasked, unscrambled presentation of q over s.
func Plain(s *scenario.Scenario, q Question) Presentation {
	return Presentation{
		Pattern: Unmasked,
		Agents:  s.Names(),
		Objects: append([]string(nil), s.ObjectTypes...),
		Facts:   Story(s),
		Asked:   q.Query,
	}
}

// Mask applies pattern p to q over s and verifies the result.
//
// Errors: ErrMaskingInfeasible (wrapping the cause) when p has no valid
// target or the rewrite fails verification; ErrUnknownPattern.
func (e *Engine) Mask(src *rng.Source, s *scenario.Scenario, q Question, p Pattern) (Presentation, error) {
	fn, note, err := e.rewriteFor(p)
	if err != nil {
		return Presentation{}, err
	}
	pres := Plain(s, q)
	facts, err := fn(src, s, q, pres.Facts)
	if err != nil {
		return Presentation{}, err
	}
	pres.Pattern, pres.Note, pres.Facts = p, note, facts
	if err := Verify(pres, q, e.answers); err != nil {
		return Presentation{}, fmt.Errorf("masking: %s: %w: %w", p, ErrMaskingInfeasible, err)
	}

	return pres, nil
}

// Apply draws whether to mask, which pattern, and whether to scramble, then
// returns a verified presentation. An infeasible pattern falls back to
// Unmasked. An error means the stored answer does not follow from the
// scenario itself.
func (e *Engine) Apply(src *rng.Source, s *scenario.Scenario, q Question) (Presentation, error) {
	pres := Plain(s, q)
	if src.Chance(e.maskingProbability) {
		if i := rng.WeightedIndex(src, e.weights); i >= 0 {
			masked, err := e.Mask(src, s, q, Pattern(i+1))
			switch {
			case err == nil:
				pres = masked
			case !errors.Is(err, ErrMaskingInfeasible):
				return Presentation{}, err
			}
		}
	}
	if pres.Pattern == Unmasked {
		if err := Verify(pres, q, e.answers); err != nil {
			return Presentation{}, err
		}
	}
	if src.Chance(e.scrambleProbability) {
		pres.Scrambled = scramble(src, pres.Facts)
	}

	return pres, nil
}

// scramble shuffles the transfer block of facts in place, keeping each
// step's facts together. It reports whether anything moved.
func scramble(src *rng.Source, facts []Fact) bool {
	start, end := -1, -1
	for i, f := range facts {
		if f.Kind == Movement || f.Kind == Share {
			if start < 0 {
				start = i
			}
			end = i + 1
		}
	}
	if start < 0 {
		return false
	}

	var groups [][]Fact
	for _, f := range facts[start:end] {
		if n := len(groups); n > 0 && groups[n-1][0].Step == f.Step {
			groups[n-1] = append(groups[n-1], f)
			continue
		}
		groups = append(groups, []Fact{f})
	}
	if len(groups) < 2 {
		return false
	}
	rng.Shuffle(src, groups)

	i := start
	for _, g := range groups {
		i += copy(facts[i:], g)
	}

	return true
}
