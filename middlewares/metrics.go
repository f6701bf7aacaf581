package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP 层的基础指标：按路由和状态码统计请求量与耗时
var (
	httpRequestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campfire",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "campfire",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// MetricsMiddleware 采集请求量和耗时指标
// path 用路由模板（c.FullPath）而不是原始 URL，避免标签基数爆炸
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			// 未匹配到路由（404），统一归到一个标签里
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
