package generator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the run counters. Each Metrics owns a private registry so
// concurrent runs and tests never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	scenarios  *prometheus.CounterVec
	attempts   *prometheus.CounterVec
	questions  *prometheus.CounterVec
	fallbacks  prometheus.Counter
	complexity prometheus.Histogram
	duration   prometheus.Histogram
}

// NewMetrics creates and registers the awpgen collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scenarios: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awpgen_scenarios_total",
				Help: "Scenarios by outcome (generated or skipped) and difficulty",
			},
			[]string{"outcome", "difficulty"},
		),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awpgen_scenario_attempts_failed_total",
				Help: "Failed scenario attempts by failing stage",
			},
			[]string{"stage"},
		),
		questions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "awpgen_questions_total",
				Help: "Questions by type and masking pattern",
			},
			[]string{"question_type", "pattern"},
		),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "awpgen_question_fallbacks_total",
			Help: "Questions that fell back to final_count after resampling",
		}),
		complexity: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "awpgen_scenario_complexity",
			Help:    "Scenario complexity scores",
			Buckets: []float64{2, 4, 6, 8, 10, 12, 15, 20, 30},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "awpgen_scenario_seconds",
			Help:    "Wall time to build one scenario with its questions",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	m.registry.MustRegister(m.scenarios, m.attempts, m.questions, m.fallbacks, m.complexity, m.duration)

	return m
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the current values in the text exposition format,
// suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
