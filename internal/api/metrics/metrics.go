// Package metrics defines and registers all custom Prometheus metrics for the
// EventHub API. It is the single source of truth for metric names, labels, and
// help strings. Metrics self-register with the default registry at init time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eventhub"

// RegistrationsCreatedTotal counts registrations accepted by the policy.
// Label:
//   - event_id: the target event
var RegistrationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_created_total",
		Help:      "Total number of registrations accepted, by event.",
	},
	[]string{"event_id"},
)

// RegistrationsRejectedTotal counts registrations rejected by the policy.
// Label:
//   - reason: "duplicate", "event_not_found", "closed", or "capacity"
var RegistrationsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_rejected_total",
		Help:      "Total number of registrations rejected by the policy, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RacePacksDistributedTotal counts race pack units handed out.
var RacePacksDistributedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "race_packs_distributed_total",
		Help:      "Total number of race pack units distributed.",
	},
)
