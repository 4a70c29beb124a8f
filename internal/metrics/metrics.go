// Package metrics provides Prometheus metrics for the campaign editor.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SavesTotal tracks editor saves by outcome
	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campaign_editor",
			Subsystem: "editor",
			Name:      "saves_total",
			Help:      "Total number of editor saves by outcome",
		},
		[]string{"outcome"},
	)

	// SaveDuration tracks how long a full cascading save takes
	SaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "campaign_editor",
			Subsystem: "editor",
			Name:      "save_duration_seconds",
			Help:      "Duration of cascading saves in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	// BackendCallsTotal tracks entity service calls made by saves
	BackendCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campaign_editor",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "Total number of entity service calls by entity, operation and status",
		},
		[]string{"entity", "op", "status"},
	)

	// OpenSessions tracks editor sessions held by the registry
	OpenSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "campaign_editor",
			Subsystem: "editor",
			Name:      "open_sessions",
			Help:      "Number of editor sessions currently open",
		},
	)
)

// RecordSave records the outcome of a save: saved, skipped, invalid,
// failed or rejected.
func RecordSave(outcome string, elapsed time.Duration) {
	SavesTotal.WithLabelValues(outcome).Inc()
	if outcome == "saved" || outcome == "failed" {
		SaveDuration.Observe(elapsed.Seconds())
	}
}

// RecordBackendCall records one entity service call.
func RecordBackendCall(entity, op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	BackendCallsTotal.WithLabelValues(entity, op, status).Inc()
}
