// Package metrics defines all custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingsCreatedTotal counts new product listings by category.
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of product listings created, by category.",
	},
	[]string{"category"},
)

// ListingsDeletedTotal counts removed product listings.
var ListingsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_deleted_total",
		Help:      "Total number of product listings deleted.",
	},
)

// ── Cart and checkout metrics ─────────────────────────────────────────────────

// CartMutationsTotal counts cart changes.
// Label:
//   - op: "add", "change_qty", or "remove"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

// CheckoutsTotal counts checkout attempts.
// Label:
//   - result: "ok", "empty_cart", or "error"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts, labelled by result.",
	},
	[]string{"result"},
)

// CheckoutLines measures how many lines a successful checkout converts
// into purchase records.
var CheckoutLines = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_lines",
		Help:      "Number of cart lines per successful checkout.",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
	},
)
