// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lista_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency by route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lista_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ExtractionsTotal counts extraction attempts by variant and outcome
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lista_recipe_extractions_total",
			Help: "Total number of recipe extraction attempts",
		},
		[]string{"variant", "result"},
	)

	// UpstreamDuration tracks chat completion latency by upstream status
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lista_upstream_request_duration_seconds",
			Help:    "Chat completion request latency in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"status"},
	)

	// RateLimitRejects counts requests rejected by the rate limiter
	RateLimitRejects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lista_rate_limit_rejects_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
	)

	// PanicRecoveries counts panics recovered in handlers
	PanicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lista_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)
