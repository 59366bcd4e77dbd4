package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "barycentre",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "barycentre",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "path"})

	// Lookup cache metrics, labelled by cache name (geocode, reverse, route).
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "barycentre",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total lookup cache hits",
	}, []string{"cache"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "barycentre",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total lookup cache misses",
	}, []string{"cache"})

	// Provider lookups by outcome (resolved, unresolved).
	Lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "barycentre",
		Subsystem: "provider",
		Name:      "lookups_total",
		Help:      "Provider lookups by outcome",
	}, []string{"cache", "outcome"})

	OpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "barycentre",
		Subsystem: "op",
		Name:      "duration_seconds",
		Help:      "Duration of timed adapter and cache operations",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	}, []string{"op", "result"})
)

// Handler serves the Prometheus /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
