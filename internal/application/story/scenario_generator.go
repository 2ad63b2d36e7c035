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

// ScenarioGenerator 生成序章与结局剧情
type ScenarioGenerator struct {
	llm textCompleter
}

func NewScenarioGenerator(factory ChatModelFactory, cfg *config.Config) *ScenarioGenerator {
	return &ScenarioGenerator{
		llm: textCompleter{
			factory:     factory,
			provider:    cfg.LLM.DefaultProvider,
			temperature: float32(cfg.Story.ScenarioTemperature),
		},
	}
}

// Prologue 生成序章
func (g *ScenarioGenerator) Prologue(ctx context.Context, in *PrologueInput) (*entity.ScenarioResult, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	noteUnknownCodes(ctx, in.Character, in.Background)
	prompt, err := BuildProloguePrompt(ctx, in)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "failed to build scenario prompt")
	}
	return g.generate(ctx, entity.ScenarioKindPrologue, service.WorkflowPrologue, prompt)
}

// Ending 生成结局，结局类型由调用方事先校验
func (g *ScenarioGenerator) Ending(ctx context.Context, in *EndingInput) (*entity.ScenarioResult, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	ctx = logger.WithContext(ctx, logger.EndingTypeKey, string(in.Ending.Type))
	noteUnknownCodes(ctx, in.Character, in.Background)
	prompt, err := BuildEndingPrompt(ctx, in)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "failed to build scenario prompt")
	}
	return g.generate(ctx, entity.ScenarioKindEnding, service.WorkflowEnding, prompt)
}

func (g *ScenarioGenerator) generate(ctx context.Context, kind entity.ScenarioKind, workflow string, prompt string) (_ *entity.ScenarioResult, err error) {
	ctx = logger.WithContext(ctx, logger.ScenarioKindKey, string(kind))
	ctx, span := tracer.Start(ctx, "story.scenario."+string(kind))
	defer func() {
		tracer.End(span, err)
		metrics.ScenarioGenerationTotal.WithLabelValues(string(kind), statusLabel(err)).Inc()
	}()

	raw, err := g.llm.complete(ctx, workflow, prompt)
	if err != nil {
		logger.Error(ctx, "scenario generation failed", err)
		return nil, classifyTextError(err, apperrors.CodeScenarioFailed, "scenario generation failed")
	}

	res, fallback := parseScenario(raw)
	if fallback {
		metrics.ScenarioCompositionFallbackTotal.WithLabelValues(string(kind)).Inc()
		logger.Warn(ctx, "scenario output has no composition tag, using default pose")
	}
	if res.Scenario == "" {
		err = apperrors.Wrap(entity.ErrEmptyText, apperrors.CodeEmptyProviderResult, "text provider returned an empty result")
		return nil, err
	}

	logger.Info(ctx, "scenario generated", "chars", len([]rune(res.Scenario)))
	return &res, nil
}
