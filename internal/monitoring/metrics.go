package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Invocation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// Metrics collects Prometheus metrics for the dashboard service. Each
// instance owns its registry so tests can build collectors freely.
type Metrics struct {
	registry         *prometheus.Registry
	agentInvocations *prometheus.CounterVec
	draftsApproved   prometheus.Counter
}

// NewMetrics creates and registers the service metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.agentInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dca_agent_invocations_total",
			Help: "Agent gateway invocations by agent and outcome",
		},
		[]string{"agent", "outcome"},
	)

	m.draftsApproved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dca_drafts_approved_total",
			Help: "Drafts approved and scheduled onto the calendar",
		},
	)

	m.registry.MustRegister(m.agentInvocations, m.draftsApproved)
	return m
}

// RecordInvocation counts one gateway invocation.
func (m *Metrics) RecordInvocation(agent, outcome string) {
	if m == nil {
		return
	}
	m.agentInvocations.WithLabelValues(agent, outcome).Inc()
}

// RecordApproval counts one draft approval.
func (m *Metrics) RecordApproval() {
	if m == nil {
		return
	}
	m.draftsApproved.Inc()
}

// Handler exposes the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
