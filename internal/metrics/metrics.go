// Package metrics provides Prometheus metrics for the collection and enrichment pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SourceFetchTotal counts feed fetches per source and outcome.
	SourceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsroom",
			Name:      "source_fetch_total",
			Help:      "Total number of feed source fetches",
		},
		[]string{"source", "status"},
	)

	// SourceFetchDuration measures how long a source takes to fetch and parse.
	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "newsroom",
			Name:      "source_fetch_duration_seconds",
			Help:      "Duration of feed source fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// EnrichmentTotal counts enrichment stage outcomes.
	EnrichmentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsroom",
			Name:      "enrichment_total",
			Help:      "Total number of enrichment stage executions",
		},
		[]string{"stage", "outcome"},
	)

	// CollectionRunsTotal counts collection runs by final status.
	CollectionRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsroom",
			Name:      "collection_runs_total",
			Help:      "Total number of collection runs",
		},
		[]string{"status"},
	)

	// ArticlesUpserted counts articles written by collection runs.
	ArticlesUpserted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "newsroom",
			Name:      "articles_upserted_total",
			Help:      "Total number of articles upserted by collection runs",
		},
	)

	// JobsTotal counts queue jobs by type and status.
	JobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "newsroom",
			Name:      "jobs_total",
			Help:      "Total number of queue jobs handled",
		},
		[]string{"type", "status"},
	)
)

// RecordSourceFetch records one source fetch.
func RecordSourceFetch(source string, failed bool, seconds float64) {
	status := "success"
	if failed {
		status = "error"
	}
	SourceFetchTotal.WithLabelValues(source, status).Inc()
	SourceFetchDuration.WithLabelValues(source).Observe(seconds)
}

func RecordStage(stage, outcome string) {
	EnrichmentTotal.WithLabelValues(stage, outcome).Inc()
}

func RecordCollectionRun(status string, upserted int) {
	CollectionRunsTotal.WithLabelValues(status).Inc()
	ArticlesUpserted.Add(float64(upserted))
}

func RecordJob(jobType, status string) {
	JobsTotal.WithLabelValues(jobType, status).Inc()
}
