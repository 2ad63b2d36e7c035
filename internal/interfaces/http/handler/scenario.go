package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"carbon-story-api/internal/application/story"
	"carbon-story-api/internal/domain/entity"
	"carbon-story-api/internal/interfaces/http/dto"
)

// ScenarioGenerator 剧情生成
type ScenarioGenerator interface {
	Prologue(ctx context.Context, in *story.PrologueInput) (*entity.ScenarioResult, error)
	Ending(ctx context.Context, in *story.EndingInput) (*entity.ScenarioResult, error)
}

// ScenarioHandler 序章与结局生成
type ScenarioHandler struct {
	generator ScenarioGenerator
}

func NewScenarioHandler(generator ScenarioGenerator) *ScenarioHandler {
	return &ScenarioHandler{generator: generator}
}

// Prologue 生成序章
// @Summary 生成序章
// @Tags Scenario
// @Accept json
// @Produce json
// @Param body body dto.PrologueRequest true "角色与场景设定"
// @Success 200 {object} dto.ScenarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/scenario/prologue [post]
func (h *ScenarioHandler) Prologue(c *gin.Context) {
	var req dto.PrologueRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.FromError(c, err)
		return
	}

	res, err := h.generator.Prologue(c.Request.Context(), req.ToStoryInput())
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ScenarioResponse{Scenario: res.Scenario, Composition: res.Composition})
}

// Ending 生成结局，结局类型在调用模型前校验
// @Summary 生成结局
// @Tags Scenario
// @Accept json
// @Produce json
// @Param body body dto.EndingRequest true "序章、结局类型与设定"
// @Success 200 {object} dto.ScenarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/scenario/ending [post]
func (h *ScenarioHandler) Ending(c *gin.Context) {
	var req dto.EndingRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.FromError(c, err)
		return
	}
	ending, err := req.ResolveEnding()
	if err != nil {
		dto.FromError(c, err)
		return
	}

	res, err := h.generator.Ending(c.Request.Context(), req.ToStoryInput(ending))
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ScenarioResponse{Scenario: res.Scenario, Composition: res.Composition})
}
