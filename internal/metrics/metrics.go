package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geotemp_http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geotemp_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	IntegrityRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geotemp_integrity_rejections_total",
			Help: "Total writes rejected by referential or uniqueness checks",
		},
		[]string{"resource", "kind"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geotemp_rate_limited_total",
			Help: "Total requests rejected by the rate limiter",
		},
	)

	RateLimiterErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geotemp_rate_limiter_errors_total",
			Help: "Total rate limiter backend failures (requests were let through)",
		},
	)
)
