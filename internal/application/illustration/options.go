// Package illustration 将图片提示词与可选参考图转换为图片服务调用
package illustration

import (
	"strings"

	"carbon-story-api/internal/domain/entity"
)

// 输出尺寸
const (
	SizeSquare    = "1024x1024"
	SizePortrait  = "1024x1536"
	SizeLandscape = "1536x1024"
)

var aspectRatioSizes = map[string]string{
	"1:1":  SizeSquare,
	"9:16": SizePortrait,
	"2:3":  SizePortrait,
	"16:9": SizeLandscape,
	"3:2":  SizeLandscape,
}

// SizeForAspectRatio 宽高比映射为像素尺寸，未知值返回正方形
func SizeForAspectRatio(ratio string) string {
	if size, ok := aspectRatioSizes[strings.TrimSpace(ratio)]; ok {
		return size
	}
	return SizeSquare
}

var strengthInstructions = map[entity.ReferenceStrength]string{
	entity.ReferenceStrengthWeak: "Use the reference image only as loose inspiration for the character; " +
		"you may change pose, clothing details and colors freely.",
	entity.ReferenceStrengthMedium: "Keep the character recognizable from the reference image: " +
		"preserve the face, hairstyle and overall outfit while adapting the scene.",
	entity.ReferenceStrengthStrong: "Maintain strict consistency with the reference image: keep the exact face, " +
		"hairstyle, body type, outfit and color palette of the character unchanged.",
}

// StrengthInstruction 返回参考强度对应的指令，未知值按 Medium 处理
func StrengthInstruction(strength string) string {
	if s, ok := strengthInstructions[entity.ReferenceStrength(strings.TrimSpace(strength))]; ok {
		return s
	}
	return strengthInstructions[entity.ReferenceStrengthMedium]
}

// FinalPrompt 仅在提供参考图时追加参考强度指令
func FinalPrompt(prompt string, hasReference bool, strength string) string {
	p := strings.TrimSpace(prompt)
	if !hasReference {
		return p
	}
	return p + "\n\n" + StrengthInstruction(strength)
}
