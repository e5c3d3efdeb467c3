// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// GatewayCallDuration tracks assistant gateway call duration per operation.
	GatewayCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assistant_call_duration_seconds",
			Help:    "Assistant gateway call duration in seconds",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 45, 60},
		},
		[]string{"operation", "status"},
	)

	// TranscriptionsTotal tracks audio transcription requests.
	TranscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transcriptions_total",
			Help: "Total audio transcription requests",
		},
		[]string{"status"},
	)

	// ChatTurnsTotal tracks chat turns processed, by role.
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total conversation turns processed",
		},
		[]string{"role"},
	)

	// SpeechBytesTotal tracks synthesized speech payload bytes.
	SpeechBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "speech_synthesis_bytes_total",
			Help: "Total bytes of synthesized speech returned",
		},
	)

	// InventorySearchesTotal tracks inventory search queries.
	InventorySearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_searches_total",
			Help: "Total inventory search queries",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordGatewayCall records metrics for one assistant gateway call.
func RecordGatewayCall(operation, status string, duration float64) {
	GatewayCallDuration.WithLabelValues(operation, status).Observe(duration)
}
