package illustration

import (
	"context"
	"errors"
	"strings"
	"time"

	"carbon-story-api/internal/config"
	"carbon-story-api/internal/domain/entity"
	apperrors "carbon-story-api/pkg/errors"
	"carbon-story-api/pkg/logger"
	"carbon-story-api/pkg/metrics"
	"carbon-story-api/pkg/tracer"
)

// 调用方式，用作指标标签
const (
	modeGenerate    = "generate"
	modeEdit        = "edit"
	modeEditWrapped = "edit_wrapped"
)

// ImageProvider 图片服务（port），由基础设施层实现
type ImageProvider interface {
	Generate(ctx context.Context, call *entity.ImageCall) (*entity.ImageResult, error)
	Edit(ctx context.Context, call *entity.ImageCall, layout entity.EditLayout) (*entity.ImageResult, error)
}

// Service 图片生成服务
type Service struct {
	provider ImageProvider
	cfg      *config.ImageConfig
}

func NewService(provider ImageProvider, cfg *config.Config) *Service {
	return &Service{provider: provider, cfg: &cfg.Image}
}

// Render 生成图片并返回 PNG data URI
func (s *Service) Render(ctx context.Context, req *entity.ImageRequest) (_ string, err error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return "", apperrors.New(apperrors.CodeInvalidParam, "prompt is required")
	}
	// 客户端输入错误优先于凭证缺失
	ref, err := DecodeReference(req.BaseImage)
	if err != nil {
		return "", err
	}
	if !s.cfg.Configured() {
		return "", apperrors.ErrProviderNotConfigured
	}

	call := &entity.ImageCall{
		Prompt:    FinalPrompt(req.Prompt, ref != nil, req.ReferenceStrength),
		Size:      SizeForAspectRatio(req.AspectRatio),
		Model:     s.cfg.ModelFor(req.UseHighQuality),
		Reference: ref,
	}

	ctx, span := tracer.Start(ctx, "illustration.render")
	defer func() { tracer.End(span, err) }()

	var res *entity.ImageResult
	if ref == nil {
		res, err = s.invoke(ctx, modeGenerate, call, func(ctx context.Context) (*entity.ImageResult, error) {
			return s.provider.Generate(ctx, call)
		})
	} else {
		res, err = s.edit(ctx, call)
	}
	if err != nil {
		return "", classifyImageError(err)
	}
	if res == nil || len(res.Data) == 0 {
		return "", classifyImageError(entity.ErrNoImage)
	}

	logger.Info(ctx, "image generated", "model", call.Model, "size", call.Size, "bytes", len(res.Data))
	return DataURI(res.Data), nil
}

// edit 先以内联形态提交参考图，服务拒绝该形态时改为包装形态重试一次
func (s *Service) edit(ctx context.Context, call *entity.ImageCall) (*entity.ImageResult, error) {
	res, err := s.invoke(ctx, modeEdit, call, func(ctx context.Context) (*entity.ImageResult, error) {
		return s.provider.Edit(ctx, call, entity.EditLayoutInline)
	})
	if err == nil || !errors.Is(err, entity.ErrReferenceImageShape) {
		return res, err
	}

	logger.Warn(ctx, "reference image shape rejected, retrying with wrapped layout", "error", err.Error())
	return s.invoke(ctx, modeEditWrapped, call, func(ctx context.Context) (*entity.ImageResult, error) {
		return s.provider.Edit(ctx, call, entity.EditLayoutWrapped)
	})
}

func (s *Service) invoke(ctx context.Context, mode string, call *entity.ImageCall, fn func(context.Context) (*entity.ImageResult, error)) (*entity.ImageResult, error) {
	start := time.Now()
	logger.Debug(ctx, "image provider call", "mode", mode, "model", call.Model, "size", call.Size)

	res, err := fn(ctx)
	if err == nil && (res == nil || len(res.Data) == 0) {
		err = entity.ErrNoImage
	}

	status := "success"
	if err != nil {
		status = "error"
		logger.Error(ctx, "image provider call failed", err, "mode", mode, "model", call.Model)
	}
	metrics.ImageGenerationTotal.WithLabelValues(mode, call.Model, status).Inc()
	metrics.ImageGenerationDuration.WithLabelValues(mode, call.Model).Observe(time.Since(start).Seconds())
	return res, err
}

func classifyImageError(err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, entity.ErrNoImage) {
		return apperrors.Wrap(err, apperrors.CodeImageFailed, "image generation failed")
	}
	return apperrors.Wrap(err, apperrors.CodeImageProviderError, "image provider error")
}
