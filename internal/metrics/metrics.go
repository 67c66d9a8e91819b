// Package metrics registers the Prometheus instruments exposed on the ops
// endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatRequests counts chat RPCs by outcome (ok, unauthorized, error).
	ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_chat_requests_total",
		Help: "Chat requests by outcome.",
	}, []string{"outcome"})

	// CacheLookups counts semantic cache lookups by result (hit, miss).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_cache_lookups_total",
		Help: "Semantic cache lookups by result.",
	}, []string{"result"})

	// ChatDuration observes end-to-end chat latency in seconds.
	ChatDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "assistant_chat_duration_seconds",
		Help:    "End-to-end chat latency.",
		Buckets: prometheus.DefBuckets,
	})

	// DocumentsProcessed counts ingestion outcomes (completed, error).
	DocumentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_documents_processed_total",
		Help: "Documents processed by final status.",
	}, []string{"status"})

	// ChunksIndexed counts chunks written to the vector store.
	ChunksIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assistant_chunks_indexed_total",
		Help: "Chunks embedded and indexed.",
	})

	// TaskRetries counts re-enqueued ingestion tasks.
	TaskRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assistant_task_retries_total",
		Help: "Ingestion tasks re-enqueued after a retriable failure.",
	})
)
