// SPDX-License-Identifier: MIT

package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchComparisons counts transform-versus-entry comparisons
	searchComparisons = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fpseq_search_comparisons_total",
		Help: "Transform versus database entry comparisons",
	})

	// searchMatches counts entries admitted to a top-K list
	searchMatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fpseq_search_matches_total",
		Help: "Database entries matching a transform of the query",
	})

	// searchDuration tracks whole-search latency
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fpseq_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	})
)
