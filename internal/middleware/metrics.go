package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkingflow_http_requests_total",
			Help: "Total number of HTTP requests per route and status code",
		},
		[]string{"method", "route", "code"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parkingflow_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds per route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RateFetchesTotal counts outbound exchange-rate fetches by outcome.
	RateFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkingflow_rate_fetches_total",
			Help: "Total number of exchange-rate provider calls by outcome",
		},
		[]string{"outcome"},
	)
)

// MetricsMiddleware records request counts and latencies for Prometheus.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDurationSeconds.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
