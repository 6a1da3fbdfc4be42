// Package metrics exposes the Prometheus instrumentation for upstream calls,
// cache effectiveness, and completed scans.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsight",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Total upstream requests by provider and outcome.",
	}, []string{"provider", "status"}) // "ok", "error"

	upstreamLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "solsight",
		Subsystem: "upstream",
		Name:      "request_latency_seconds",
		Help:      "Upstream request latency in seconds by provider.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"provider"})

	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsight",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Cache lookups by entity and outcome.",
	}, []string{"entity", "outcome"}) // "hit", "miss"

	scansCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsight",
		Subsystem: "intel",
		Name:      "scans_total",
		Help:      "Completed wallet scans by resulting risk level.",
	}, []string{"level"})

	anomaliesFlagged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "solsight",
		Subsystem: "intel",
		Name:      "anomalies_flagged_total",
		Help:      "Anomaly entries emitted by type.",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(
		upstreamRequests,
		upstreamLatency,
		cacheLookups,
		scansCompleted,
		anomaliesFlagged,
	)
}

// ObserveUpstream records one upstream call.
func ObserveUpstream(provider string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	upstreamRequests.WithLabelValues(provider, status).Inc()
	upstreamLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordCacheHit and RecordCacheMiss track cache effectiveness per entity.
func RecordCacheHit(entity string)  { cacheLookups.WithLabelValues(entity, "hit").Inc() }
func RecordCacheMiss(entity string) { cacheLookups.WithLabelValues(entity, "miss").Inc() }

// RecordScan counts a completed analysis by risk level.
func RecordScan(level string) { scansCompleted.WithLabelValues(level).Inc() }

// RecordAnomaly counts an emitted anomaly entry.
func RecordAnomaly(anomalyType string) { anomaliesFlagged.WithLabelValues(anomalyType).Inc() }
