// Package metrics defines and registers all custom Prometheus metrics for
// the client/admin management API. It is the single source of truth for
// metric names, labels, and help strings. Metrics register themselves with
// the default registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clientadmin"

// ── Authentication metrics ───────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failures are not broken down further;
//     the API deliberately does not distinguish unknown user from bad password)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LoginsThrottledTotal counts logins rejected by the failed-attempt throttle
// before any credential check ran.
var LoginsThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_throttled_total",
		Help:      "Total number of login attempts rejected by the throttle.",
	},
)

// TokensIssuedTotal counts bearer tokens issued.
// Label:
//   - role: "admin" or "super_admin"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued, by role.",
	},
	[]string{"role"},
)

// PrincipalsCreatedTotal counts admin/super-admin accounts created.
// Label:
//   - role: "admin" or "super_admin" (the latter only via bootstrap)
var PrincipalsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "principals_created_total",
		Help:      "Total number of privileged accounts created, by role.",
	},
	[]string{"role"},
)

// ── Client roster metrics ────────────────────────────────────────────────────

// ClientsCreatedTotal counts client records created.
// Label:
//   - status: initial status of the record ("active", "inactive", "suspended")
var ClientsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_created_total",
		Help:      "Total number of client records created, by initial status.",
	},
	[]string{"status"},
)

// ClientsDeletedTotal counts client records deleted.
var ClientsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clients_deleted_total",
		Help:      "Total number of client records deleted.",
	},
)
