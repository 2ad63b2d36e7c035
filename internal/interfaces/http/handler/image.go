package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"carbon-story-api/internal/application/story"
	"carbon-story-api/internal/domain/entity"
	"carbon-story-api/internal/interfaces/http/dto"
)

// ImagePromptGenerator 图片提示词生成
type ImagePromptGenerator interface {
	Generate(ctx context.Context, in *story.ImagePromptInput) (string, error)
}

// ImageRenderer 图片生成
type ImageRenderer interface {
	Render(ctx context.Context, req *entity.ImageRequest) (string, error)
}

// ImageHandler 图片提示词与图片生成
type ImageHandler struct {
	prompts  ImagePromptGenerator
	renderer ImageRenderer
}

func NewImageHandler(prompts ImagePromptGenerator, renderer ImageRenderer) *ImageHandler {
	return &ImageHandler{prompts: prompts, renderer: renderer}
}

// ImagePrompt 将剧情转写为图片提示词
// @Summary 生成图片提示词
// @Tags Image
// @Accept json
// @Produce json
// @Param body body dto.ImagePromptRequest true "剧情与设定"
// @Success 200 {object} dto.ImagePromptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/image-prompt [post]
func (h *ImageHandler) ImagePrompt(c *gin.Context) {
	var req dto.ImagePromptRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.FromError(c, err)
		return
	}

	prompt, err := h.prompts.Generate(c.Request.Context(), req.ToStoryInput())
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ImagePromptResponse{Prompt: prompt})
}

// Image 生成图片，返回 data URI
// @Summary 生成图片
// @Tags Image
// @Accept json
// @Produce json
// @Param body body dto.ImageRequest true "提示词与可选参考图"
// @Success 200 {object} dto.ImageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/image [post]
func (h *ImageHandler) Image(c *gin.Context) {
	var req dto.ImageRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.FromError(c, err)
		return
	}

	dataURL, err := h.renderer.Render(c.Request.Context(), req.ToEntity())
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ImageResponse{DataURL: dataURL})
}
