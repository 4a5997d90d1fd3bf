package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks served payloads by freshness (fresh, stale)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prtracker_cache_hits_total",
			Help: "Total number of requests served from the dataset cache",
		},
		[]string{"freshness"}, // "fresh", "stale"
	)

	// CacheMisses tracks requests that could not be served from the entry
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prtracker_cache_misses_total",
			Help: "Total number of requests that required an upstream fetch",
		},
	)

	// CoalescedWaiters tracks callers that joined an in-flight fetch
	CoalescedWaiters = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prtracker_coalesced_waiters_total",
			Help: "Total number of callers that joined an in-flight upstream fetch",
		},
	)

	// UpstreamFetches tracks upstream fetch settlements by outcome
	UpstreamFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prtracker_upstream_fetches_total",
			Help: "Total number of upstream fetches by outcome",
		},
		[]string{"outcome"}, // "success", "quota_exceeded", "timeout", "upstream_error"
	)

	// FetchDuration tracks upstream fetch duration
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prtracker_upstream_fetch_duration_seconds",
			Help:    "Upstream fetch duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 45},
		},
	)

	// StaleServes tracks quota failures absorbed by serving the old entry
	StaleServes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prtracker_stale_serves_total",
			Help: "Total number of quota failures absorbed by serving the previous dataset",
		},
	)

	// Invalidations tracks explicit cache invalidations
	Invalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prtracker_cache_invalidations_total",
			Help: "Total number of explicit cache invalidations",
		},
	)
)
