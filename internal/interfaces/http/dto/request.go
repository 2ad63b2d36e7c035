package dto

import (
	"strings"

	"carbon-story-api/internal/application/story"
	"carbon-story-api/internal/domain/entity"
	apperrors "carbon-story-api/pkg/errors"
)

// PrologueRequest 序章生成请求
type PrologueRequest struct {
	CoreTheme        string                    `json:"coreTheme" binding:"required,notblank"`
	CharacterProfile *entity.CharacterProfile  `json:"characterProfile" binding:"required"`
	Background       *entity.BackgroundProfile `json:"background" binding:"required"`
}

// ToStoryInput 转换为应用层输入结构
func (r *PrologueRequest) ToStoryInput() *story.PrologueInput {
	return &story.PrologueInput{
		CoreTheme:  strings.TrimSpace(r.CoreTheme),
		Character:  *r.CharacterProfile,
		Background: *r.Background,
	}
}

// EndingRequest 结局生成请求
type EndingRequest struct {
	Prologue         string                    `json:"prologue" binding:"required,notblank"`
	EndingType       string                    `json:"endingType" binding:"required,notblank"`
	CoreTheme        string                    `json:"coreTheme" binding:"required,notblank"`
	CharacterProfile *entity.CharacterProfile  `json:"characterProfile" binding:"required"`
	Background       *entity.BackgroundProfile `json:"background" binding:"required"`
	UserSuggestion   string                    `json:"userSuggestion,omitempty" binding:"max=2000"`
}

// ResolveEnding 查找结局类型，未知类型返回 1009
func (r *EndingRequest) ResolveEnding() (entity.Ending, error) {
	ending, ok := entity.LookupEnding(strings.TrimSpace(r.EndingType))
	if !ok {
		return entity.Ending{}, apperrors.New(apperrors.CodeUnknownEndingType, "unknown endingType").
			WithDetail(r.EndingType)
	}
	return ending, nil
}

// ToStoryInput 转换为应用层输入结构
func (r *EndingRequest) ToStoryInput(ending entity.Ending) *story.EndingInput {
	return &story.EndingInput{
		CoreTheme:      strings.TrimSpace(r.CoreTheme),
		Prologue:       strings.TrimSpace(r.Prologue),
		Ending:         ending,
		Character:      *r.CharacterProfile,
		Background:     *r.Background,
		UserSuggestion: strings.TrimSpace(r.UserSuggestion),
	}
}

// ImagePromptRequest 图片提示词生成请求
type ImagePromptRequest struct {
	ScenarioText        string                    `json:"scenarioText" binding:"required,notblank"`
	ScenarioType        string                    `json:"scenarioType" binding:"required,oneof=prologue ending"`
	CharacterProfile    *entity.CharacterProfile  `json:"characterProfile" binding:"required"`
	Background          *entity.BackgroundProfile `json:"background" binding:"required"`
	Title               string                    `json:"title,omitempty" binding:"max=255"`
	CompositionGuidance string                    `json:"compositionGuidance,omitempty" binding:"max=500"`
}

// ToStoryInput 转换为应用层输入结构，剧情类型已由 oneof 校验
func (r *ImagePromptRequest) ToStoryInput() *story.ImagePromptInput {
	kind, _ := entity.ParseScenarioKind(r.ScenarioType)
	return &story.ImagePromptInput{
		ScenarioText: strings.TrimSpace(r.ScenarioText),
		ScenarioKind: kind,
		Title:        strings.TrimSpace(r.Title),
		Composition:  strings.TrimSpace(r.CompositionGuidance),
		Character:    *r.CharacterProfile,
		Background:   *r.Background,
	}
}

// ImageRequest 图片生成请求
type ImageRequest struct {
	Prompt            string                 `json:"prompt" binding:"required,notblank"`
	BaseImage         *entity.ReferenceImage `json:"baseImage,omitempty"`
	AspectRatio       string                 `json:"aspectRatio,omitempty"`
	ReferenceStrength string                 `json:"referenceStrength,omitempty"`
	UseHighQuality    bool                   `json:"useHighQuality,omitempty"`
}

// ToEntity 转换为领域请求
func (r *ImageRequest) ToEntity() *entity.ImageRequest {
	return &entity.ImageRequest{
		Prompt:            strings.TrimSpace(r.Prompt),
		BaseImage:         r.BaseImage,
		AspectRatio:       r.AspectRatio,
		ReferenceStrength: r.ReferenceStrength,
		UseHighQuality:    r.UseHighQuality,
	}
}
