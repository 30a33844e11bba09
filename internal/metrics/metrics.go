// Package metrics registers the Prometheus counters and histograms exposed
// on the operator's metrics endpoint, grounded on
// SAP-component-operator-runtime/internal/metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const prefix = "github_operator"

var (
	// ReconcileTotal counts reconciliations per controller kind and outcome
	// ("success" or "error").
	ReconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_reconcile_total",
			Help: "Total number of reconciliations per kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// ReconcileDuration observes reconciliation wall-clock time per kind.
	ReconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_reconcile_duration_seconds",
			Help:    "Reconciliation duration in seconds per kind",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// ProviderRequestsTotal counts remote provider calls per kind and
	// action, the side-effectful-request-set this operator is meant to
	// keep minimal.
	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_provider_requests_total",
			Help: "Remote provider requests per kind and action",
		},
		[]string{"kind", "action"},
	)
)

func init() {
	metrics.Registry.MustRegister(ReconcileTotal, ReconcileDuration, ProviderRequestsTotal)
}

// ObserveReconcile records outcome and duration for one reconciliation of
// kind, started at startedAt.
func ObserveReconcile(kind string, startedAt time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	ReconcileTotal.WithLabelValues(kind, outcome).Inc()
	ReconcileDuration.WithLabelValues(kind).Observe(time.Since(startedAt).Seconds())
}

// ObserveProviderAction records that a remote provider call produced action
// for kind (e.g. kind="Repository", action="repository-updated").
func ObserveProviderAction(kind, action string) {
	if action == "" {
		return
	}
	ProviderRequestsTotal.WithLabelValues(kind, action).Inc()
}
