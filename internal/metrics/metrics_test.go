package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementOutcome(OutcomeFound)
	m.IncrementOutcome(OutcomeFound)
	m.IncrementOutcome(OutcomeInvalid)
	m.ObserveFetchLatency("company", 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LookupOutcome.WithLabelValues(OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupOutcome.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.FetchLatency))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementOutcome(OutcomeError)
		m.ObserveFetchLatency("partners", time.Second)
	})
}
