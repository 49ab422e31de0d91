package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Metrics provides observability for company lookups.
type Metrics struct {
	// Lookup results by outcome
	LookupOutcome *prometheus.CounterVec

	// Store round-trip latencies by fetch
	FetchLatency *prometheus.HistogramVec
}

// New registers the lookup metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		LookupOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cnpj_lookup_outcomes_total",
			Help: "Total company lookups by outcome",
		}, []string{"outcome"}),

		FetchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cnpj_lookup_fetch_duration_seconds",
			Help:    "Duration of registry queries by fetch",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}), // source: "company", "secondary_activities", "partners"
	}
}

func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) ObserveFetchLatency(source string, d time.Duration) {
	if m != nil {
		m.FetchLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}
