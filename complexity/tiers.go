package complexity

import (
	"fmt"
	"math"
	"sort"
)

// Range is a closed score interval.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether x lies in [Min, Max].
func (r Range) Contains(x float64) bool { return x >= r.Min && x <= r.Max }

// DefaultTargets are the stock score bands per difficulty tier.
func DefaultTargets() map[string]Range {
	return map[string]Range{
		"simple":   {Min: 3, Max: 6},
		"moderate": {Min: 6, Max: 8},
		"complex":  {Min: 8, Max: 15},
	}
}

// Tier returns the name of the band containing score. Overlapping bounds go
// to the band with the lower Min; ties on Min break by name. A score outside
// every band is reported as "below" or "above" relative to the overall span.
func Tier(score float64, targets map[string]Range) string {
	names := make([]string, 0, len(targets))
	for n := range targets {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := targets[names[i]], targets[names[j]]
		if a.Min != b.Min {
			return a.Min < b.Min
		}
		return names[i] < names[j]
	})

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, n := range names {
		r := targets[n]
		if r.Contains(score) {
			return n
		}
		lo, hi = math.Min(lo, r.Min), math.Max(hi, r.Max)
	}
	if score < lo {
		return "below"
	}

	return "above"
}

// Summary describes a score distribution.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"average"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.2f median=%.2f stdev=%.2f min=%.2f max=%.2f",
		s.Count, s.Mean, s.Median, s.StdDev, s.Min, s.Max)
}

// Summarize computes mean, median, sample standard deviation and extremes,
// each rounded to two decimals. An empty input yields the zero Summary.
func Summarize(scores []float64) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, x := range sorted {
		sum += x
	}
	mean := sum / float64(n)

	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	var sd float64
	if n > 1 {
		ss := 0.0
		for _, x := range sorted {
			ss += (x - mean) * (x - mean)
		}
		sd = math.Sqrt(ss / float64(n-1))
	}

	return Summary{
		Count:  n,
		Mean:   Round2(mean),
		Median: Round2(median),
		StdDev: Round2(sd),
		Min:    Round2(sorted[0]),
		Max:    Round2(sorted[n-1]),
	}
}
