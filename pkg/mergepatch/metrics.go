package mergepatch

import "github.com/prometheus/client_golang/prometheus"

// Request outcomes used as the "outcome" label.
const (
	OutcomeApplied    = "applied"
	OutcomeRejected   = "rejected"
	OutcomeBadRequest = "bad_request"
	OutcomeFailed     = "failed"
)

// Metrics tracks patch requests.
//
// Metrics:
//   - <namespace>_patch_requests_total: requests by model and outcome
//   - <namespace>_patch_issues: issues per rejected request, by model
type Metrics struct {
	requests *prometheus.CounterVec
	issues   *prometheus.HistogramVec
}

// NewMetrics creates patch metrics and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "patch",
				Name:      "requests_total",
				Help:      "Total number of patch requests by outcome",
			},
			[]string{"model", "outcome"},
		),
		issues: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "patch",
				Name:      "issues",
				Help:      "Number of issues reported for a rejected patch",
				Buckets:   []float64{1, 2, 3, 5, 10, 25, 50},
			},
			[]string{"model"},
		),
	}

	reg.MustRegister(m.requests, m.issues)
	return m
}

// Observe records one request. Safe to call on a nil *Metrics.
func (m *Metrics) Observe(model, outcome string, issues int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(model, outcome).Inc()
	if outcome == OutcomeRejected {
		m.issues.WithLabelValues(model).Observe(float64(issues))
	}
}
