// Package router 提供 HTTP 路由配置
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"carbon-story-api/internal/config"
	"carbon-story-api/internal/interfaces/http/dto"
	"carbon-story-api/internal/interfaces/http/handler"
	"carbon-story-api/internal/interfaces/http/middleware"
	apperrors "carbon-story-api/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers RouterHandlers
}

// RouterHandlers 路由依赖的处理器
type RouterHandlers struct {
	Health   *handler.HealthHandler
	Scenario *handler.ScenarioHandler
	Image    *handler.ImageHandler
}

// NewWithDeps 创建新的路由器
func NewWithDeps(cfg *config.Config, handlers RouterHandlers) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	probes := r.probePaths()
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name, probes...))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics(probes...))
	}

	r.engine.Use(middleware.AuditWithConfig(middleware.AuditConfig{
		Enabled:   true,
		SkipPaths: middleware.DefaultAuditSkipPaths,
	}))
	r.engine.Use(middleware.BodyLimit(r.cfg.Server.HTTP.MaxBodyBytes))
}

// probePaths 探针与指标路径，不参与追踪与 HTTP 指标
func (r *Router) probePaths() []string {
	paths := []string{"/health", "/ready", "/live", "/api/health"}
	if mp := r.cfg.Observability.Metrics.Path; mp != "" {
		paths = append(paths, mp)
	}
	return paths
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	h := r.handlers
	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	// 独立指标端口时不在 API 端口暴露
	if r.cfg.Observability.Metrics.Enabled && !r.cfg.SeparateMetricsServer() {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	RegisterAPIRoutes(r.engine.Group("/api"), h.Health, h.Scenario, h.Image)

	r.engine.NoRoute(r.notFound(r.cfg.Server.HTTP.StaticDir))
}

// notFound 非 API 路径优先匹配静态资源
func (r *Router) notFound(staticDir string) gin.HandlerFunc {
	var files http.Handler
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			files = http.FileServer(http.Dir(staticDir))
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if files != nil && c.Request.Method == http.MethodGet && !strings.HasPrefix(path, "/api/") {
			if path == "/" || staticFileExists(staticDir, path) {
				files.ServeHTTP(c.Writer, c.Request)
				return
			}
		}
		dto.Error(c, http.StatusNotFound, apperrors.CodeNotFound, "resource not found")
	}
}

func staticFileExists(dir, urlPath string) bool {
	p := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+urlPath)))
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
