package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// 上游 completions 调用延迟（毫秒）
	UpstreamCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_call_latency_ms",
			Help:    "Upstream completions API call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"status"},
	)

	// 通知写入计数
	NotificationAddedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_added_count",
			Help: "Total number of notifications added",
		},
		[]string{"type"}, // type: info, success, warning, motivational
	)

	// 测验生成计数
	QuizGenerationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_generation_count",
			Help: "Total number of quiz generation requests",
		},
		[]string{"outcome"}, // outcome: success, upstream_error, fallback
	)
)

// RecordHTTPRequestDuration 记录 HTTP 请求延迟
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordUpstreamCallLatency 记录上游调用延迟
func RecordUpstreamCallLatency(status string, duration time.Duration) {
	UpstreamCallLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

// IncrementNotificationAdded 增加通知写入计数
func IncrementNotificationAdded(notificationType string) {
	NotificationAddedCount.WithLabelValues(notificationType).Inc()
}

// IncrementQuizGeneration 增加测验生成计数
func IncrementQuizGeneration(outcome string) {
	QuizGenerationCount.WithLabelValues(outcome).Inc()
}
