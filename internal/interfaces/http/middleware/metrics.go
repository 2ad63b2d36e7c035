// Package middleware 提供 HTTP 中间件
package middleware

import (
	"strconv"
	"time"

	"carbon-story-api/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedPath 未命中路由（静态资源与 404）统一使用的标签，防止标签基数膨胀
const unmatchedPath = "unmatched"

// Metrics Prometheus 指标采集中间件，skipPaths 中的路由不计数
func Metrics(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.FullPath()
		if _, ok := skip[path]; ok && path != "" {
			c.Next()
			return
		}
		if path == "" {
			path = unmatchedPath
		}

		start := time.Now()
		method := c.Request.Method
		if c.Request.ContentLength > 0 {
			metrics.HTTPRequestSize.WithLabelValues(method, path).Observe(float64(c.Request.ContentLength))
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size > 0 {
			metrics.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
