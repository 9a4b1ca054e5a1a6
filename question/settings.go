package question

import (
	"fmt"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/masking"
)

// DefaultTypeWeights returns selection weights that give basic types about
// two thirds of the draws, advanced types a fifth and multi-hop the rest.
func DefaultTypeWeights() map[answer.QuestionType]float64 {
	w := make(map[answer.QuestionType]float64, len(answer.Types()))
	for _, qt := range answer.Types() {
		switch qt.Category() {
		case answer.Basic:
			w[qt] = 1.0
		case answer.Advanced:
			w[qt] = 0.3
		case answer.MultiHop:
			w[qt] = 0.4
		}
	}

	return w
}

// DefaultComplexityWeights returns the per-type weight of the question score.
// Types without a specific weight score 1.
func DefaultComplexityWeights() map[answer.QuestionType]float64 {
	w := make(map[answer.QuestionType]float64, len(answer.Types()))
	for _, qt := range answer.Types() {
		w[qt] = 1.0
	}
	w[answer.TotalTransferred] = 1.2
	w[answer.TotalReceived] = 1.2
	w[answer.Difference] = 1.3
	w[answer.SumAll] = 1.5

	return w
}

// DefaultMultipliers returns the advanced and multi-hop multipliers; basic types get 1.
func DefaultMultipliers() map[answer.QuestionType]float64 {
	m := make(map[answer.QuestionType]float64, len(answer.Types()))
	for _, qt := range answer.Types() {
		m[qt] = 1.0
	}
	m[answer.ComparativeMore] = 1.3
	m[answer.ComparativeDifference] = 1.4
	m[answer.TemporalAfterStep] = 1.6
	m[answer.ConditionalIfGaveMore] = 1.8
	m[answer.MultiAgentCombined] = 1.5
	m[answer.RatioFraction] = 2.0
	m[answer.RatioPercentage] = 2.0
	m[answer.MultiHopIndirect] = 1.8
	m[answer.MultiHopNetFlow] = 1.7
	m[answer.MultiHopPathCount] = 2.2
	m[answer.MultiHopMultiStep] = 2.0

	return m
}

// DefaultMaskingFactors returns the per-pattern factor of the question score.
func DefaultMaskingFactors() map[masking.Pattern]float64 {
	return map[masking.Pattern]float64{
		masking.Unmasked:         1.0,
		masking.MaskInitialCount: 2.0,
		masking.ComparativeChain: 1.5,
		masking.PercentageRatio:  1.0,
	}
}

// DefaultScrambleFactor is added to the masking factor of scrambled stories.
const DefaultScrambleFactor = 0.5

// Defaults for target sampling.
const (
	DefaultExtraMin       = 1
	DefaultExtraMax       = 5
	DefaultCombinedAgents = 3
	DefaultMaxResample    = 10
)

// completeTypes panics unless m has a non-negative entry for every question type.
func completeTypes(name string, m map[answer.QuestionType]float64) map[answer.QuestionType]float64 {
	out := make(map[answer.QuestionType]float64, len(m))
	for _, qt := range answer.Types() {
		v, ok := m[qt]
		if !ok || v < 0 {
			panic(fmt.Sprintf("question: %s: missing or negative entry for %s", name, qt))
		}
		out[qt] = v
	}

	return out
}
