// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon-story-api/internal/interfaces/http/middleware"
	apperrors "carbon-story-api/pkg/errors"
	"carbon-story-api/pkg/logger"
)

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Error   string              `json:"error"`
	Code    apperrors.ErrorCode `json:"code"`
	TraceID string              `json:"trace_id,omitempty"`
}

// ScenarioResponse 剧情生成响应
type ScenarioResponse struct {
	Scenario    string `json:"scenario"`
	Composition string `json:"composition"`
}

// ImagePromptResponse 图片提示词响应
type ImagePromptResponse struct {
	Prompt string `json:"prompt"`
}

// ImageResponse 图片生成响应
type ImageResponse struct {
	DataURL string `json:"dataUrl"`
}

// HealthResponse /api/health 响应
type HealthResponse struct {
	OK bool `json:"ok"`
}

// Success 返回 200 与原样的响应体
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, data)
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, code apperrors.ErrorCode, message string) {
	c.Set(middleware.ErrorCodeKey, string(code))
	c.AbortWithStatusJSON(httpCode, ErrorResponse{
		Error:   message,
		Code:    code,
		TraceID: c.GetString("trace_id"),
	})
}

// FromError 将错误转换为响应，只暴露 AppError 的 Message
func FromError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed", err, "code", string(appErr.Code))
	} else {
		logger.Warn(c.Request.Context(), "request rejected", "code", string(appErr.Code), "error", err.Error())
	}
	_ = c.Error(err)

	message := appErr.Message
	if appErr.Detail != "" && appErr.HTTPStatus < http.StatusInternalServerError {
		message = message + ": " + appErr.Detail
	}
	Error(c, appErr.HTTPStatus, appErr.Code, message)
}
