// Package imagegen 提供基于 Gemini 的图片生成客户端
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"carbon-story-api/internal/config"
	"carbon-story-api/internal/domain/entity"
	apperrors "carbon-story-api/pkg/errors"
)

// sizeAspectRatios 像素尺寸映射为 Gemini 的宽高比参数
var sizeAspectRatios = map[string]string{
	"1024x1024": "1:1",
	"1024x1536": "2:3",
	"1536x1024": "3:2",
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient 图片生成与参考图编辑
type GeminiClient struct {
	cfg *config.ImageConfig

	once      sync.Once
	models    contentGenerator
	clientErr error
}

func NewGeminiClient(cfg *config.Config) *GeminiClient {
	return &GeminiClient{cfg: &cfg.Image}
}

// Generate 根据提示词生成图片
func (c *GeminiClient) Generate(ctx context.Context, call *entity.ImageCall) (*entity.ImageResult, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{genai.NewPartFromText(call.Prompt)}},
	}
	return c.do(ctx, call, contents)
}

// Edit 以参考图为基础生成图片
func (c *GeminiClient) Edit(ctx context.Context, call *entity.ImageCall, layout entity.EditLayout) (*entity.ImageResult, error) {
	if call.Reference == nil || len(call.Reference.Data) == 0 {
		return nil, fmt.Errorf("edit requires a reference image")
	}
	res, err := c.do(ctx, call, editContents(call, layout))
	if err != nil && isReferenceShapeError(err) {
		return nil, fmt.Errorf("%w: %v", entity.ErrReferenceImageShape, err)
	}
	return res, err
}

func (c *GeminiClient) do(ctx context.Context, call *entity.ImageCall, contents []*genai.Content) (*entity.ImageResult, error) {
	models, err := c.client(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := models.GenerateContent(ctx, call.Model, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
		ImageConfig: &genai.ImageConfig{
			AspectRatio: aspectRatioForSize(call.Size),
		},
	})
	if err != nil {
		return nil, err
	}
	return extractImage(resp, call.Model)
}

// client 首次调用时创建 genai 客户端
func (c *GeminiClient) client(ctx context.Context) (contentGenerator, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, apperrors.ErrProviderNotConfigured
	}
	c.once.Do(func() {
		if c.models != nil {
			return
		}
		cl, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     c.cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: c.cfg.Timeout},
		})
		if err != nil {
			c.clientErr = fmt.Errorf("create genai client: %w", err)
			return
		}
		c.models = cl.Models
	})
	if c.clientErr != nil {
		return nil, c.clientErr
	}
	return c.models, nil
}

func editContents(call *entity.ImageCall, layout entity.EditLayout) []*genai.Content {
	image := genai.NewPartFromBytes(call.Reference.Data, call.Reference.MimeType)
	text := genai.NewPartFromText(call.Prompt)

	if layout == entity.EditLayoutWrapped {
		return []*genai.Content{
			{Role: "user", Parts: []*genai.Part{image}},
			{Role: "user", Parts: []*genai.Part{text}},
		}
	}
	return []*genai.Content{
		{Role: "user", Parts: []*genai.Part{image, text}},
	}
}

func aspectRatioForSize(size string) string {
	if r, ok := sizeAspectRatios[size]; ok {
		return r
	}
	return "1:1"
}

func extractImage(resp *genai.GenerateContentResponse, model string) (*entity.ImageResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("%w: prompt blocked (%s)", entity.ErrNoImage, resp.PromptFeedback.BlockReason)
		}
		return nil, entity.ErrNoImage
	}

	var finish genai.FinishReason
	for _, candidate := range resp.Candidates {
		if candidate == nil {
			continue
		}
		if finish == "" {
			finish = candidate.FinishReason
		}
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &entity.ImageResult{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
					Model:    model,
				}, nil
			}
		}
	}

	if finish != "" && finish != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w: finish reason %s", entity.ErrNoImage, finish)
	}
	return nil, entity.ErrNoImage
}

// isReferenceShapeError 服务以参数错误拒绝参考图时返回 true
func isReferenceShapeError(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		var apiErrPtr *genai.APIError
		if !errors.As(err, &apiErrPtr) || apiErrPtr == nil {
			return false
		}
		apiErr = *apiErrPtr
	}
	if apiErr.Code != http.StatusBadRequest && apiErr.Status != "INVALID_ARGUMENT" {
		return false
	}
	msg := strings.ToLower(apiErr.Message)
	for _, sig := range referenceShapeSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// referenceShapeSignatures 参考图传参形态被拒时的报错片段；泛指图片的 400 不在此列
var referenceShapeSignatures = []string{
	"inline_data",
	"inlinedata",
	"mime type",
	"mime_type",
	"image part",
}

// Configured 是否已配置凭证
func (c *GeminiClient) Configured() bool {
	return c.cfg.Configured()
}
