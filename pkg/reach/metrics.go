package reach

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EstimateResults tracks which resolution path served each estimate
	EstimateResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prtracker_reach_estimates_total",
			Help: "Total reach estimates by resolution path",
		},
		[]string{"match"}, // "exact", "case_insensitive", "substring", "pattern_<rule>"
	)

	// EnhancerLookups tracks async web-search lookups by outcome
	EnhancerLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prtracker_reach_enhancer_lookups_total",
			Help: "Total enhancer lookups by outcome",
		},
		[]string{"outcome"}, // "hit", "memo", "error"
	)
)
