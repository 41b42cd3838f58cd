// Package metrics defines all custom Prometheus metrics for the Adahi
// donation-tracking API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adahi"

// SubmissionsCreatedTotal counts newly recorded submissions.
// Label:
//   - preference: distribution preference ("ramtha", "gaza", "donor", "fund")
var SubmissionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_created_total",
		Help:      "Total number of Adahi submissions created, by distribution preference.",
	},
	[]string{"preference"},
)

// EntryStatusTogglesTotal counts entry-status changes made by administrators.
// Label:
//   - status: the new entry status ("pending" or "entered")
var EntryStatusTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entry_status_toggles_total",
		Help:      "Total number of entry status changes, by resulting status.",
	},
	[]string{"status"},
)

// SlaughterTransitionsTotal counts slaughter workflow transitions.
// Label:
//   - to: the target workflow stage
var SlaughterTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slaughter_transitions_total",
		Help:      "Total number of slaughter workflow transitions, by target stage.",
	},
	[]string{"to"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// WatchSubscribers tracks the number of open realtime watch streams.
var WatchSubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "watch_subscribers",
		Help:      "Current number of open submission watch streams.",
	},
)
