// Package metrics defines and registers all custom Prometheus metrics for
// the hotel reservation API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotel"

// ── Reservation metrics ──────────────────────────────────────────────────────

// ReservationsCreatedTotal counts successful room reservations.
var ReservationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of rooms successfully reserved.",
	},
)

// ReservationConflictsTotal counts reservation attempts rejected because the
// room was already unavailable.
var ReservationConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservation_conflicts_total",
		Help:      "Total number of reservation attempts on unavailable rooms.",
	},
)

// ── Rating metrics ───────────────────────────────────────────────────────────

// RatingsSubmittedTotal counts accepted rating submissions.
// Label:
//   - rating: submitted value ("1".."5")
var RatingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_submitted_total",
		Help:      "Total number of rating submissions accepted, by value.",
	},
	[]string{"rating"},
)

// ── Summary-queue metrics ────────────────────────────────────────────────────

// SummaryQueueDepth tracks the number of summary jobs waiting per worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var SummaryQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "summary_queue_depth",
		Help:      "Current number of summary jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
