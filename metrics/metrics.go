package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "localspot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "localspot_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Search metrics
	SearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "localspot_searches_total",
			Help: "Total number of provider searches",
		},
	)
	SuggestionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "localspot_suggestions_total",
			Help: "Total number of suggestion lookups",
		},
	)
)
