// Package router 提供 HTTP 路由配置
package router

import (
	"carbon-story-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes 注册 /api 路由
func RegisterAPIRoutes(
	api *gin.RouterGroup,
	healthHandler *handler.HealthHandler,
	scenarioHandler *handler.ScenarioHandler,
	imageHandler *handler.ImageHandler,
) {
	api.GET("/health", healthHandler.APIHealth)

	// 剧情
	scenario := api.Group("/scenario")
	{
		scenario.POST("/prologue", scenarioHandler.Prologue)
		scenario.POST("/ending", scenarioHandler.Ending)
	}

	// 图片
	api.POST("/image-prompt", imageHandler.ImagePrompt)
	api.POST("/image", imageHandler.Image)
}
