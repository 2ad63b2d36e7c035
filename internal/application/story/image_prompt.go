package story

import (
	"context"
	"fmt"
	"strings"

	"carbon-story-api/internal/domain/catalog"
	"carbon-story-api/internal/domain/entity"
	workflowprompt "carbon-story-api/internal/workflow/prompt"
)

// ImageTemplate 图片提示词模板
type ImageTemplate string

const (
	ImageTemplateStandard ImageTemplate = "standard"
	// ImageTemplateSafe 以象征手法描绘场景，用于标准模板失败后的兜底
	ImageTemplateSafe ImageTemplate = "safe"
)

const defaultPose = "standing naturally"

// ImagePromptInput 图片提示词生成输入
type ImagePromptInput struct {
	ScenarioText string
	ScenarioKind entity.ScenarioKind
	Title        string
	// Composition 剧情生成返回的姿态描述
	Composition string
	Character   entity.CharacterProfile
	Background  entity.BackgroundProfile
}

// VisualStructure 组合镜头与姿态
func VisualStructure(composition string, pose string) string {
	p := strings.TrimSpace(pose)
	if p == "" {
		p = defaultPose
	}
	return catalog.CameraKeyword(composition) + ", " + p
}

// BuildImagePrompt 渲染给文本模型的图片提示词指令
func BuildImagePrompt(ctx context.Context, in *ImagePromptInput, tpl ImageTemplate) (string, error) {
	id, err := imageTemplateID(tpl)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "untitled"
	}
	kind := string(in.ScenarioKind)
	if kind == "" {
		kind = string(entity.ScenarioKindPrologue)
	}

	vars := map[string]any{
		"scenario_kind":    kind,
		"title":            title,
		"scenario_text":    strings.TrimSpace(in.ScenarioText),
		"character":        catalog.DescribeCharacter(in.Character),
		"background":       valueOrUnknown(catalog.DescribeBackground(in.Background)),
		"style_tags":       catalog.StyleTags(in.Character.ArtStyle),
		"visual_structure": VisualStructure(in.Background.Composition, in.Composition),
	}
	return defaultPromptRegistry.Render(ctx, id, vars)
}

func imageTemplateID(tpl ImageTemplate) (workflowprompt.PromptID, error) {
	switch tpl {
	case ImageTemplateStandard:
		return workflowprompt.PromptImageStandardV1, nil
	case ImageTemplateSafe:
		return workflowprompt.PromptImageSafeV1, nil
	default:
		return "", fmt.Errorf("unknown image template %q", tpl)
	}
}
