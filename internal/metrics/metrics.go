package metrics

import (
	"fmt"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const divisor = 100

// Metrics holds the Prometheus vectors for the API.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpstreamRequestsTotal *prometheus.CounterVec

	RecommendationsTotal *prometheus.CounterVec
	AuthFailuresTotal    prometheus.Counter
}

// NewMetrics constructs and registers all API metrics on the default
// registry.
func NewMetrics(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests received",
			},
			[]string{"method", "endpoint", "status_class"},
		),

		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of HTTP request latencies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		UpstreamRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "upstream_requests_total",
				Help:      "Total calls to external feeds by result",
			},
			[]string{"upstream", "result"},
		),

		RecommendationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "recommendations_total",
				Help:      "Total recommendations issued",
			},
			[]string{"recommendation", "bike_type"},
		),

		AuthFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "auth_failures_total",
				Help:      "Requests rejected by the API key check",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestsTotal,
		m.RecommendationsTotal,
		m.AuthFailuresTotal,
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/sched/latencies:seconds")},
			),
		),
	)

	return m
}

// HTTPMiddleware returns a Gin middleware instrumenting every endpoint.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		d := time.Since(start)

		status := c.Writer.Status()
		labels := prometheus.Labels{
			"method":       c.Request.Method,
			"endpoint":     c.FullPath(),
			"status_class": getStatusClass(status),
		}
		m.HTTPRequestsTotal.With(labels).Inc()
		m.HTTPRequestDuration.With(prometheus.Labels{
			"method":   c.Request.Method,
			"endpoint": c.FullPath(),
		}).Observe(d.Seconds())
	}
}

// IncRecommendation counts one issued recommendation.
func (m *Metrics) IncRecommendation(recommendation, bikeType string) {
	m.RecommendationsTotal.WithLabelValues(recommendation, bikeType).Inc()
}

// IncAuthFailure counts one request rejected by the API key check.
func (m *Metrics) IncAuthFailure() {
	m.AuthFailuresTotal.Inc()
}

// ObserveUpstream counts one call to an external feed.
func (m *Metrics) ObserveUpstream(upstream string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.UpstreamRequestsTotal.WithLabelValues(upstream, result).Inc()
}

func getStatusClass(code int) string {
	return fmt.Sprintf("%dxx", code/divisor)
}
