// Package metrics holds the Prometheus collectors shared by the upstream
// clients, the cache tiers and the HTTP middleware.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "libfinder_http_requests_total",
		Help: "Served HTTP requests by route pattern and status class",
	}, []string{"route", "status"})
	HTTPDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "libfinder_http_duration_ms",
		Help:    "HTTP handler duration in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "libfinder_upstream_requests_total",
		Help: "Upstream API calls by api, endpoint and outcome",
	}, []string{"api", "endpoint", "outcome"})
	UpstreamDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "libfinder_upstream_duration_ms",
		Help:    "Upstream API call duration in milliseconds",
		Buckets: []float64{10, 25, 50, 100, 200, 500, 1000, 2000, 5000},
	}, []string{"api", "endpoint"})
	CacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "libfinder_cache_lookups_total",
		Help: "Cache lookups by tier and result",
	}, []string{"tier", "result"})
	RateLimitedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "libfinder_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	}, []string{"route"})
	AvailabilityChecksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "libfinder_availability_checks_total",
		Help: "Per-library loan availability checks by outcome",
	}, []string{"scope", "outcome"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPDurationMs,
		UpstreamRequestsTotal,
		UpstreamDurationMs,
		CacheLookupsTotal,
		RateLimitedTotal,
		AvailabilityChecksTotal,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
