// Package metrics provides the central Prometheus registry reference for the
// PR Tracker backend. Metrics are defined in their respective packages
// (cache, reach) next to the code they instrument; this package documents
// the full series inventory in one place.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the backend. All
// metrics register automatically via promauto in their packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - prtracker_cache_hits_total{freshness} (Counter): served payloads by freshness (fresh, stale)
//   - prtracker_cache_misses_total (Counter): requests that required an upstream fetch
//   - prtracker_coalesced_waiters_total (Counter): callers that joined an in-flight fetch
//   - prtracker_upstream_fetches_total{outcome} (Counter): fetch settlements by outcome
//   - prtracker_upstream_fetch_duration_seconds (Histogram): upstream fetch duration
//   - prtracker_stale_serves_total (Counter): quota failures absorbed by serving the previous dataset
//   - prtracker_cache_invalidations_total (Counter): explicit invalidations
//
// Reach Metrics (pkg/reach):
//   - prtracker_reach_estimates_total{match} (Counter): estimates by resolution path
//   - prtracker_reach_enhancer_lookups_total{outcome} (Counter): async lookups by outcome
//
// Example Prometheus Queries:
//
//   # Cache hit rate
//   sum(rate(prtracker_cache_hits_total[5m])) /
//   (sum(rate(prtracker_cache_hits_total[5m])) + sum(rate(prtracker_cache_misses_total[5m])))
//
//   # Quota pressure: stale serves per hour
//   increase(prtracker_stale_serves_total[1h])
//
//   # Upstream failure rate by outcome
//   rate(prtracker_upstream_fetches_total{outcome!="success"}[5m])
//
//   # P95 fetch latency
//   histogram_quantile(0.95, rate(prtracker_upstream_fetch_duration_seconds_bucket[5m]))
