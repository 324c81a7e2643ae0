// Package metrics defines the custom Prometheus metrics for the library
// system. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library"

// SearchesTotal counts catalog searches that reached the network.
// Debounced and short-circuited invocations are not counted.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of catalog search requests issued upstream.",
	},
)

// CatalogErrorsTotal counts swallowed catalog failures.
// Label:
//   - endpoint: "search", "work", "author", or "editions"
var CatalogErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_errors_total",
		Help:      "Total number of catalog requests that failed and were degraded to empty results.",
	},
	[]string{"endpoint"},
)

// LoansCreatedTotal counts loans successfully appended to the ledger.
var LoansCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_created_total",
		Help:      "Total number of loans created.",
	},
)

// AuthFailuresTotal counts rejected authentication-gated operations.
// Label:
//   - reason: "missing_token", "bad_credentials", or "duplicate_username"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication checks, by reason.",
	},
	[]string{"reason"},
)
