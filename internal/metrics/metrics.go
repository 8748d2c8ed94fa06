package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Backend API metrics
var (
	// BackendRequestsTotal tracks requests made to the prediction backend
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdash_backend_requests_total",
			Help: "Total number of requests made to the prediction backend",
		},
		[]string{"path", "status"},
	)

	// BackendRequestDuration tracks backend request latency
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "airdash_backend_request_duration_seconds",
			Help:    "Duration of requests to the prediction backend in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

// Cache metrics
var (
	// CacheHitsTotal tracks read-through cache hits
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdash_cache_hits_total",
			Help: "Total number of response cache hits",
		},
		[]string{"resource"},
	)

	// CacheMissesTotal tracks read-through cache misses
	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdash_cache_misses_total",
			Help: "Total number of response cache misses",
		},
		[]string{"resource"},
	)
)

// Realtime metrics
var (
	// RealtimeReconnectsTotal tracks WebSocket reconnection attempts
	RealtimeReconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airdash_realtime_reconnects_total",
			Help: "Total number of WebSocket reconnection attempts",
		},
	)

	// RealtimeConnected reports whether the realtime feed is connected
	RealtimeConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "airdash_realtime_connected",
			Help: "Whether the WebSocket realtime feed is connected (1) or not (0)",
		},
	)

	// RealtimeMessagesTotal tracks received realtime messages by type
	RealtimeMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdash_realtime_messages_total",
			Help: "Total number of realtime messages received",
		},
		[]string{"type"},
	)
)

// Application metrics
var (
	// AppInfo provides static information about the application
	AppInfo = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "airdash_app_info",
			Help: "Application information (always 1)",
		},
	)

	// AppStartTime records when the application started
	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "airdash_app_start_time_seconds",
			Help: "Unix timestamp of when the application started",
		},
	)
)

func init() {
	AppInfo.Set(1)
	AppStartTime.SetToCurrentTime()
}

// ObserveBackendRequest records one request to the prediction backend
func ObserveBackendRequest(path, status string, duration time.Duration) {
	BackendRequestsTotal.WithLabelValues(path, status).Inc()
	BackendRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}
