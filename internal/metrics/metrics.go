package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listing",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "listing",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	// Measurements counts computed distances by whether they were known or unknown.
	Measurements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "listing",
		Subsystem: "distance",
		Name:      "measurements_total",
		Help:      "Total distance measurements, by outcome",
	}, []string{"outcome"})
)

const (
	OutcomeKnown   = "known"
	OutcomeUnknown = "unknown"
)

// ObserveMeasurement records one distance computation.
func ObserveMeasurement(known bool) {
	if known {
		Measurements.WithLabelValues(OutcomeKnown).Inc()
		return
	}
	Measurements.WithLabelValues(OutcomeUnknown).Inc()
}

// Middleware records request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus /metrics endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
