// Package metrics defines and registers all custom Prometheus metrics for
// the time-tracking API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetrack"

// EntriesCreatedTotal counts accepted time entries.
// Labels:
//   - position: "worker" or "rider"
//   - overtime: "true" when the entry exceeds the overtime threshold
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of time entries successfully created.",
	},
	[]string{"position", "overtime"},
)

// EntryRejectionsTotal counts rejected entry create/update attempts.
// Label:
//   - reason: "incomplete_input", "invalid_format", "overlap", "forbidden"
var EntryRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_rejections_total",
		Help:      "Total number of time entry submissions rejected by validation.",
	},
	[]string{"reason"},
)

// ReportsGeneratedTotal counts rendered report downloads.
// Labels:
//   - format: "pdf" or "xlsx"
//   - scope: "user" or "all"
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of report documents rendered, by format and scope.",
	},
	[]string{"format", "scope"},
)

// NotificationsTotal counts notification delivery outcomes.
// Label:
//   - result: "sent", "error", or "dropped" (queue full)
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of entry notifications, by delivery result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests refused by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)
