// Package metrics holds the Prometheus collectors of the catalog server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apicatalog_http_requests_total",
		Help: "The total number of HTTP requests served",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "apicatalog_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	ApisSearched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apicatalog_api_searches_total",
		Help: "The total number of API searches by repository method",
	}, []string{"method"})

	ExportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apicatalog_export_rows_total",
		Help: "The total number of API rows exported",
	}, []string{"format"})

	RequestsRateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apicatalog_requests_rate_limited_total",
		Help: "The total number of requests rejected by the rate limiter",
	}, []string{"route"})
)
