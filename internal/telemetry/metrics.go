package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all the Prometheus metrics for the application
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Tool metrics
	ToolExecutions *prometheus.CounterVec
	ToolDuration   *prometheus.HistogramVec

	// Upstream weather API metrics
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		ToolExecutions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mcp_tool_executions_total",
				Help: "Total number of MCP tool executions",
			},
			[]string{"tool_name", "status"}, // success, error
		),
		ToolDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mcp_tool_execution_duration_seconds",
				Help:    "Duration of MCP tool executions in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"tool_name"},
		),

		UpstreamRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_upstream_requests_total",
				Help: "Total number of requests to the upstream weather API",
			},
			[]string{"endpoint", "status"}, // 2xx, 4xx, 5xx, error
		),
		UpstreamDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_upstream_request_duration_seconds",
				Help:    "Duration of upstream weather API requests in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"endpoint"},
		),
	}
}

// RecordHTTPRequest records metrics for an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// IncHTTPRequestsInFlight increments the in-flight requests counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// DecHTTPRequestsInFlight decrements the in-flight requests counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}

// RecordToolExecution records a tool execution
func (m *Metrics) RecordToolExecution(toolName, status string, duration time.Duration) {
	m.ToolExecutions.WithLabelValues(toolName, status).Inc()
	m.ToolDuration.WithLabelValues(toolName).Observe(duration.Seconds())
}

// RecordUpstreamRequest records a call to the upstream weather API
func (m *Metrics) RecordUpstreamRequest(endpoint, status string, duration time.Duration) {
	m.UpstreamRequests.WithLabelValues(endpoint, status).Inc()
	m.UpstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
