package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransitionsTotal counts state machine transitions by action and result
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "merchant_registration_transitions_total",
			Help: "Merchant registration status transitions by action and result.",
		},
		[]string{"action", "result"},
	)

	// BatchItemsTotal counts per-record outcomes of batch actions
	BatchItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "merchant_batch_items_total",
			Help: "Per-record outcomes of batch approve/reject/revert calls.",
		},
		[]string{"action", "outcome"},
	)

	// AuditEmitFailures counts swallowed audit emission errors
	AuditEmitFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "merchant_audit_emit_failures_total",
			Help: "Audit events that could not be recorded (logged and dropped).",
		},
	)

	// ReviewBacklogStale gauges records stuck in review past the threshold
	ReviewBacklogStale = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "merchant_review_backlog_stale",
			Help: "Records waiting in review longer than the configured threshold.",
		},
	)
)
