// Package metrics defines and registers all custom Prometheus metrics for the
// storefront gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto vars register with the default registry on import; the router
// exposes them on /metrics together with echoprometheus request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogFallbackTotal counts catalog loads that degraded to the embedded
// sample dataset instead of live backend data.
// Label:
//   - surface: the storefront endpoint that served sample data (e.g. "products", "home")
var CatalogFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fallback_total",
		Help:      "Total number of catalog responses served from the embedded sample dataset.",
	},
	[]string{"surface"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionResolutionsTotal counts credential resolutions by outcome.
// Label:
//   - result: "anonymous", "user", "admin", or "malformed"
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of bearer credential resolutions, by outcome.",
	},
	[]string{"result"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartOperationsTotal counts cart mutations.
// Label:
//   - op: "add", "update", "remove", or "clear"
var CartOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_operations_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

// OrdersPlacedTotal counts orders successfully submitted to the backend.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed through checkout.",
	},
)
