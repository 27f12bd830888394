// SPDX-License-Identifier: MIT

package seqdb

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectivityCandidates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fpseq_connectivity_candidates_total",
		Help: "Candidate sequences derived during connectivity exploration",
	})

	connectivityHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fpseq_connectivity_hits_total",
		Help: "Derived candidates that were found in the database",
	})
)
