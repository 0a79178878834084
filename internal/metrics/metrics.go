package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Tracks the number of outbound API calls to Keyhaven.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "keyhaven_api_requests_total",
			Help: "Total number of Keyhaven API requests made (by method and outcome).",
		},
		[]string{"method", "status"},
	)

	// Measures duration of API requests to Keyhaven.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "keyhaven_api_request_duration_seconds",
			Help:    "Duration of Keyhaven API requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
		},
		[]string{"method"},
	)

	ExportCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keyhaven_export_cache_hits_total",
			Help: "Number of export calls served from the in-memory cache.",
		},
	)

	ExportCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "keyhaven_export_cache_misses_total",
			Help: "Number of export calls that issued a fresh API request.",
		},
	)
)

// IncRequest records one outbound request outcome. status is the HTTP status
// code, or 0 when no response was received.
func IncRequest(method string, status int) {
	RequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
