package story

import (
	"context"
	"fmt"

	"carbon-story-api/internal/config"
	"carbon-story-api/internal/domain/entity"
	"carbon-story-api/internal/domain/service"
	apperrors "carbon-story-api/pkg/errors"
	"carbon-story-api/pkg/logger"
	"carbon-story-api/pkg/metrics"
	"carbon-story-api/pkg/tracer"
)

// ImagePromptGenerator 将剧情转写为图片提示词
type ImagePromptGenerator struct {
	llm textCompleter
}

func NewImagePromptGenerator(factory ChatModelFactory, cfg *config.Config) *ImagePromptGenerator {
	return &ImagePromptGenerator{
		llm: textCompleter{
			factory:     factory,
			provider:    cfg.LLM.DefaultProvider,
			temperature: float32(cfg.Story.ImagePromptTemperature),
		},
	}
}

// Generate 先用标准模板，失败后改用象征化的安全模板重试一次
func (g *ImagePromptGenerator) Generate(ctx context.Context, in *ImagePromptInput) (_ string, err error) {
	if in == nil {
		return "", fmt.Errorf("input is nil")
	}
	ctx, span := tracer.Start(ctx, "story.image_prompt")
	defer func() { tracer.End(span, err) }()
	noteUnknownCodes(ctx, in.Character, in.Background)

	out, err := g.attempt(ctx, in, ImageTemplateStandard, service.WorkflowImagePrompt)
	if err == nil {
		return out, nil
	}
	// 凭证缺失时安全模板同样会失败，不计为一次兜底
	if apperrors.IsCode(err, apperrors.CodeProviderNotConfigured) {
		return "", err
	}
	logger.Warn(ctx, "standard image prompt failed, falling back to safe template", "error", err.Error())

	out, err = g.attempt(ctx, in, ImageTemplateSafe, service.WorkflowImagePromptSafe)
	if err != nil {
		logger.Error(ctx, "safe image prompt failed", err)
		return "", classifyTextError(err, apperrors.CodeImagePromptFailed, "image prompt generation failed")
	}
	return out, nil
}

func (g *ImagePromptGenerator) attempt(ctx context.Context, in *ImagePromptInput, tpl ImageTemplate, workflow string) (_ string, err error) {
	defer func() {
		metrics.ImagePromptTotal.WithLabelValues(string(tpl), statusLabel(err)).Inc()
	}()

	prompt, err := BuildImagePrompt(ctx, in, tpl)
	if err != nil {
		return "", err
	}
	raw, err := g.llm.complete(ctx, workflow, prompt)
	if err != nil {
		return "", err
	}
	out := StripPromptLabel(raw)
	if out == "" {
		return "", entity.ErrEmptyText
	}
	return out, nil
}
