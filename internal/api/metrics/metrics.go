// Package metrics defines and registers all custom Prometheus metrics for the
// Life Planner API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planner"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts that passed validation.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TwoFaVerificationsTotal counts 2FA code checks.
// Label:
//   - result: "success" or "failure"
var TwoFaVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "twofa_verifications_total",
		Help:      "Total number of 2FA verification attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// AccountsCreatedTotal counts newly created transactional accounts.
// Label:
//   - type: "cash", "card", "mobile", or "bank"
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of transactional accounts created, by type.",
	},
	[]string{"type"},
)

// UploadsTotal counts file uploads handed to the storage backend.
// Labels:
//   - category: storage category ("account", "profile")
//   - result: "success" or "failure"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of file uploads, labelled by category and result.",
	},
	[]string{"category", "result"},
)

// ── Activity metrics ──────────────────────────────────────────────────────────

// ActivitiesQueueDepth tracks the current number of audit records waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivitiesQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activities_queue_depth",
		Help:      "Current number of audit records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivitiesDroppedTotal counts audit records discarded because a worker
// channel was full or the dispatcher was already stopped.
var ActivitiesDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_dropped_total",
		Help:      "Total number of audit records dropped before persistence.",
	},
)
