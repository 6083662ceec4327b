package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "travel_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	ListingQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "travel_listing_query_duration_seconds",
			Help:    "Duration of listing store round-trips in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"listing", "operation"},
	)

	ContactMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "travel_contact_messages_total",
			Help: "Total number of stored contact messages",
		},
	)

	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travel_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"route"},
	)
)

// ObserveQuery records the elapsed time since start for a listing operation.
// Use as `defer metrics.ObserveQuery("places", "list", time.Now())`.
func ObserveQuery(listing, operation string, start time.Time) {
	ListingQueryDuration.WithLabelValues(listing, operation).Observe(time.Since(start).Seconds())
}
