// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"time"

	"carbon-story-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorCodeKey dto 写入错误响应时在 gin.Context 上留下的业务错误码
const ErrorCodeKey = "error_code"

// AuditConfig 审计配置
type AuditConfig struct {
	// Enabled 是否启用审计
	Enabled bool
	// SkipPaths 跳过审计的路径
	SkipPaths []string
}

// AuditWithConfig 每个 API 请求记录一行，5xx 使用 warn 级别
func AuditWithConfig(cfg AuditConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"request_id", c.GetString("request_id"),
			"trace_id", c.GetString("trace_id"),
		}
		if code := c.GetString(ErrorCodeKey); code != "" {
			fields = append(fields, "error_code", code)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		if status >= http.StatusInternalServerError {
			logger.Warn(c.Request.Context(), "api audit", fields...)
			return
		}
		logger.Info(c.Request.Context(), "api audit", fields...)
	}
}

// DefaultAuditSkipPaths 默认跳过审计的路径
var DefaultAuditSkipPaths = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/api/health",
}
