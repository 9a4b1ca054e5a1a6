package complexity

import (
	"math"

	"github.com/katalvlaran/awpgen/metrics"
	"github.com/katalvlaran/awpgen/scenario"
)

// Weights are the per-term coefficients of the scenario score.
type Weights struct {
	Diameter  float64 `yaml:"diameter" json:"diameter"`
	Density   float64 `yaml:"density" json:"density"`
	Branching float64 `yaml:"branching" json:"branching"`
	Cycles    float64 `yaml:"cycles" json:"cycles"`
	Transfers float64 `yaml:"transfers" json:"transfers"`
	Agents    float64 `yaml:"agents" json:"agents"`
	Objects   float64 `yaml:"objects" json:"objects"`
}

// DefaultWeights returns the stock coefficients.
func DefaultWeights() Weights {
	return Weights{
		Diameter:  0.3,
		Density:   0.2,
		Branching: 0.3,
		Cycles:    0.2,
		Transfers: 0.4,
		Agents:    0.3,
		Objects:   0.2,
	}
}

// Shape is everything the scenario score depends on.
type Shape struct {
	Metrics   metrics.Metrics
	Transfers int
	Agents    int
	Objects   int
}

// ShapeOf extracts the Shape of a finalized scenario.
func ShapeOf(s *scenario.Scenario) Shape {
	return Shape{
		Metrics:   s.Metrics,
		Transfers: len(s.Transfers),
		Agents:    len(s.Agents),
		Objects:   len(s.ObjectTypes),
	}
}

// Scenario returns the weighted scenario score rounded to two decimals.
func Scenario(w Weights, s Shape) float64 {
	score := w.Diameter*float64(s.Metrics.Diameter) +
		w.Density*s.Metrics.Density +
		w.Branching*s.Metrics.AvgBranching +
		w.Cycles*float64(s.Metrics.CycleCount) +
		w.Transfers*float64(s.Transfers) +
		w.Agents*float64(s.Agents) +
		w.Objects*float64(s.Objects)

	return Round2(score)
}

// Question scales a scenario score by the question factors.
// A zero scenario score counts as 1 so that trivial scenarios still rank
// questions by type and masking.
func Question(scenarioScore, typeWeight, advanced, masking float64) float64 {
	if scenarioScore == 0 {
		scenarioScore = 1
	}

	return Round2(scenarioScore * typeWeight * advanced * masking)
}

// Round2 rounds half away from zero to two decimals.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
