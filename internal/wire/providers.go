package wire

import (
	"github.com/google/wire"

	"carbon-story-api/internal/application/illustration"
	"carbon-story-api/internal/application/story"
	"carbon-story-api/internal/config"
	"carbon-story-api/internal/infrastructure/imagegen"
	"carbon-story-api/internal/infrastructure/llm"
	"carbon-story-api/internal/interfaces/http/handler"
	"carbon-story-api/internal/interfaces/http/router"
)

// ProviderSet 外部生成服务客户端
var ProviderSet = wire.NewSet(
	llm.NewEinoFactory,
	imagegen.NewGeminiClient,
	wire.Bind(new(story.ChatModelFactory), new(*llm.EinoFactory)),
	wire.Bind(new(illustration.ImageProvider), new(*imagegen.GeminiClient)),
)

// ApplicationSet 应用服务
var ApplicationSet = wire.NewSet(
	story.NewScenarioGenerator,
	story.NewImagePromptGenerator,
	illustration.NewService,
	wire.Bind(new(handler.ScenarioGenerator), new(*story.ScenarioGenerator)),
	wire.Bind(new(handler.ImagePromptGenerator), new(*story.ImagePromptGenerator)),
	wire.Bind(new(handler.ImageRenderer), new(*illustration.Service)),
)

// RouterSet HTTP 层
var RouterSet = wire.NewSet(
	ProvideHealthHandler,
	handler.NewScenarioHandler,
	handler.NewImageHandler,
	wire.Struct(new(router.RouterHandlers), "*"),
	router.NewWithDeps,
)

// ProvideHealthHandler 就绪检查依赖两个生成服务的凭证状态
func ProvideHealthHandler(cfg *config.Config, textLLM *llm.EinoFactory, image *imagegen.GeminiClient) *handler.HealthHandler {
	return handler.NewHealthHandler(cfg.App.Version, textLLM, image)
}
