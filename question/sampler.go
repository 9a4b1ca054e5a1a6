package question

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/complexity"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

// ErrNoQuestionTypes reports that every question type has zero selection weight.
var ErrNoQuestionTypes = errors.New("question: no question type enabled")

// Sampler draws question instances. It holds no per-scenario state and is
// safe for concurrent use as long as each goroutine brings its own rng.Source.
type Sampler struct {
	types          []answer.QuestionType
	typeWeights    []float64
	complexityW    map[answer.QuestionType]float64
	multipliers    map[answer.QuestionType]float64
	maskingFactors map[masking.Pattern]float64
	scrambleFactor float64
	extraMin       int
	extraMax       int
	combinedAgents int
	maxResample    int
	answers        *answer.Engine
	masker         *masking.Engine
}

// Option tunes a Sampler. Constructors panic on meaningless values.
type Option func(*Sampler)

// WithTypeWeights sets selection weights; a zero weight disables a type.
// Every type needs an entry.
func WithTypeWeights(w map[answer.QuestionType]float64) Option {
	full := completeTypes("WithTypeWeights", w)
	return func(s *Sampler) {
		for i, qt := range s.types {
			s.typeWeights[i] = full[qt]
		}
	}
}

// WithComplexityWeights sets the per-type question score weights.
func WithComplexityWeights(w map[answer.QuestionType]float64) Option {
	full := completeTypes("WithComplexityWeights", w)
	return func(s *Sampler) { s.complexityW = full }
}

// WithMultipliers sets the per-type advanced multipliers.
func WithMultipliers(m map[answer.QuestionType]float64) Option {
	full := completeTypes("WithMultipliers", m)
	return func(s *Sampler) { s.multipliers = full }
}

// WithMaskingFactors sets the per-pattern factors and the scramble addend.
// Every pattern needs a non-negative entry.
func WithMaskingFactors(f map[masking.Pattern]float64, scramble float64) Option {
	full := make(map[masking.Pattern]float64, len(f))
	for _, p := range masking.Patterns() {
		v, ok := f[p]
		if !ok || v < 0 {
			panic(fmt.Sprintf("question: WithMaskingFactors: missing or negative entry for %s", p))
		}
		full[p] = v
	}
	if scramble < 0 {
		panic("question: WithMaskingFactors(scramble<0)")
	}
	return func(s *Sampler) { s.maskingFactors, s.scrambleFactor = full, scramble }
}

// WithExtraRange bounds the extra amount of conditional_if_gave_more.
// Panics unless 1 <= lo <= hi.
func WithExtraRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("question: WithExtraRange(%d, %d)", lo, hi))
	}
	return func(s *Sampler) { s.extraMin, s.extraMax = lo, hi }
}

// WithCombinedAgents sets how many agents multi_agent_combined sums. Panics if n < 2.
func WithCombinedAgents(n int) Option {
	if n < 2 {
		panic("question: WithCombinedAgents(n<2)")
	}
	return func(s *Sampler) { s.combinedAgents = n }
}

// WithMaxResample bounds target redraws per instance. Panics if n < 1.
func WithMaxResample(n int) Option {
	if n < 1 {
		panic("question: WithMaxResample(n<1)")
	}
	return func(s *Sampler) { s.maxResample = n }
}

// WithAnswerEngine sets the answer engine. Panics on nil.
func WithAnswerEngine(e *answer.Engine) Option {
	if e == nil {
		panic("question: WithAnswerEngine(nil)")
	}
	return func(s *Sampler) { s.answers = e }
}

// WithMasker sets the masking engine. Panics on nil.
func WithMasker(m *masking.Engine) Option {
	if m == nil {
		panic("question: WithMasker(nil)")
	}
	return func(s *Sampler) { s.masker = m }
}

// NewSampler returns a Sampler with stock weights overridden by opts.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{
		types:          answer.Types(),
		typeWeights:    make([]float64, len(answer.Types())),
		complexityW:    DefaultComplexityWeights(),
		multipliers:    DefaultMultipliers(),
		maskingFactors: DefaultMaskingFactors(),
		scrambleFactor: DefaultScrambleFactor,
		extraMin:       DefaultExtraMin,
		extraMax:       DefaultExtraMax,
		combinedAgents: DefaultCombinedAgents,
		maxResample:    DefaultMaxResample,
		answers:        answer.NewEngine(),
	}
	WithTypeWeights(DefaultTypeWeights())(s)
	for _, opt := range opts {
		opt(s)
	}
	if s.masker == nil {
		s.masker = masking.NewEngine(masking.WithAnswerEngine(s.answers))
	}

	return s
}

// SampleN draws n instances for sc, indexed 0..n-1.
func (s *Sampler) SampleN(src *rng.Source, sc *scenario.Scenario, n int) ([]Instance, error) {
	out := make([]Instance, 0, n)
	for i := 0; i < n; i++ {
		in, err := s.Sample(src, sc, i)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}

	return out, nil
}

// Sample draws one instance: type by weight, then targets until the answer
// engine accepts one, falling back to final_count after maxResample tries.
func (s *Sampler) Sample(src *rng.Source, sc *scenario.Scenario, index int) (Instance, error) {
	i := rng.WeightedIndex(src, s.typeWeights)
	if i < 0 {
		return Instance{}, ErrNoQuestionTypes
	}
	qt := s.types[i]

	for attempt := 0; attempt < s.maxResample; attempt++ {
		tg, err := s.target(src, sc, qt)
		if err == nil {
			var in Instance
			in, err = s.Build(src, sc, index, qt, tg)
			if err == nil {
				return in, nil
			}
		}
		if !retryable(err) {
			return Instance{}, err
		}
	}

	tg := answer.Target{Agent: rng.Pick(src, sc.Names()), Object: rng.Pick(src, sc.ObjectTypes)}
	in, err := s.Build(src, sc, index, answer.FinalCount, tg)
	in.Fallback = true

	return in, err
}

func retryable(err error) bool {
	return errors.Is(err, answer.ErrInvalidTarget) || errors.Is(err, answer.ErrUnreachableTarget)
}

// Build answers, masks and scores one fixed question.
func (s *Sampler) Build(src *rng.Source, sc *scenario.Scenario, index int, qt answer.QuestionType, tg answer.Target) (Instance, error) {
	a, err := s.answers.Compute(sc, qt, tg)
	if err != nil {
		return Instance{}, err
	}
	q := masking.Question{Query: masking.Query{Type: qt, Target: tg}, Answer: a}
	pres, err := s.masker.Apply(src, sc, q)
	if err != nil {
		return Instance{}, fmt.Errorf("question: mask %s: %w", qt, err)
	}

	factor := s.maskingFactors[pres.Pattern]
	if pres.Scrambled {
		factor += s.scrambleFactor
	}

	return Instance{
		ID:                 NewID(sc.ID, index),
		ScenarioID:         sc.ID,
		Index:              index,
		Type:               qt,
		Target:             tg,
		Answer:             a,
		Pattern:            pres.Pattern,
		Presentation:       pres,
		Complexity:         complexity.Question(sc.Complexity, s.complexityW[qt], s.multipliers[qt], factor),
		ScenarioComplexity: sc.Complexity,
	}, nil
}
