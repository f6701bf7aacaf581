package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"

	"campfire/pkg/errorx"
)

// RateLimitMiddleware 创建一个令牌桶限流中间件
// fillInterval: 令牌填充间隔（例如 10ms = 每秒100个令牌）
// capacity: 令牌桶的总容量（允许的突发请求数量）
func RateLimitMiddleware(fillInterval time.Duration, capacity int64) gin.HandlerFunc {
	bucket := ratelimit.NewBucket(fillInterval, capacity)

	return func(c *gin.Context) {
		// 非阻塞取令牌，取不到就限流
		// 限流响应用 429 而不是统一的 200 信封，方便网关和客户端识别
		if bucket.TakeAvailable(1) < 1 {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code": errorx.CodeRateLimitExceeded,
				"msg":  "请求过于频繁，请稍后再试",
				"data": nil,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
