// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon-story-api/internal/interfaces/http/dto"
)

// CredentialChecker 报告生成服务是否已配置凭证
type CredentialChecker interface {
	Configured() bool
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	version string
	checks  map[string]CredentialChecker
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(version string, textLLM CredentialChecker, image CredentialChecker) *HealthHandler {
	return &HealthHandler{
		version: version,
		checks: map[string]CredentialChecker{
			"text_llm": textLLM,
			"image":    image,
		},
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// APIHealth 浏览器端使用的健康检查
// @Router /api/health [get]
func (h *HealthHandler) APIHealth(c *gin.Context) {
	dto.Success(c, dto.HealthResponse{OK: true})
}

// Health 健康检查接口
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// Ready 就绪检查接口，任一服务缺少凭证时返回 503
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := make(map[string]*readinessCheck, len(h.checks))
	ready := true
	for name, checker := range h.checks {
		if checker == nil || !checker.Configured() {
			checks[name] = &readinessCheck{Status: "missing", Error: "credential not configured"}
			ready = false
			continue
		}
		checks[name] = &readinessCheck{Status: "ok"}
	}

	resp := readinessResponse{Status: "ok", Checks: checks}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
