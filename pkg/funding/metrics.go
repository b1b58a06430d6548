package funding

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels for the ledger metrics
const (
	opSave   = "save"
	opDelete = "delete"
	opStatus = "status"
)

var commitCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "funding_commits_total",
		Help: "How many allocation changes were committed, partitioned by operation.",
	},
	[]string{"operation"},
)

var conflictCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "funding_conflicts_total",
		Help: "How many allocation changes were rejected because of concurrent modification, partitioned by operation.",
	},
	[]string{"operation"},
)

var commitDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "funding_commit_duration_seconds",
		Help:    "Time from acquiring the animal lock to the end of the commit.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	},
	[]string{"operation"},
)

// Collectors returns all Prometheus collectors of the funding ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		commitCount,
		conflictCount,
		commitDuration,
	}
}

func observeCommit(operation string, start time.Time) {
	commitCount.WithLabelValues(operation).Inc()
	commitDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func observeConflict(operation string) {
	conflictCount.WithLabelValues(operation).Inc()
}
