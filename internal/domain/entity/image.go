package entity

import "errors"

// ReferenceStrength 参考图约束强度
type ReferenceStrength string

const (
	ReferenceStrengthWeak   ReferenceStrength = "Weak"
	ReferenceStrengthMedium ReferenceStrength = "Medium"
	ReferenceStrengthStrong ReferenceStrength = "Strong"
)

// ReferenceImage 参考图，Data 为 base64
type ReferenceImage struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// ImageRequest 图片生成请求
type ImageRequest struct {
	Prompt            string
	BaseImage         *ReferenceImage
	AspectRatio       string
	ReferenceStrength string
	UseHighQuality    bool
}

// ImageResult 图片服务返回结果，Data 为原始字节
type ImageResult struct {
	Data     []byte
	MimeType string
	Model    string
}

// EditLayout 编辑请求中参考图的传参形态
type EditLayout string

const (
	// EditLayoutInline 参考图与提示词位于同一内容块
	EditLayoutInline EditLayout = "inline"
	// EditLayoutWrapped 参考图单独包装为仅含一个元素的内容列表
	EditLayoutWrapped EditLayout = "wrapped"
)

var (
	// ErrNoImage 服务未返回任何图片数据
	ErrNoImage = errors.New("provider returned no image data")
	// ErrReferenceImageShape 服务拒绝了参考图的传参形态
	ErrReferenceImageShape = errors.New("provider rejected reference image argument shape")
	// ErrEmptyText 服务未返回文本
	ErrEmptyText = errors.New("provider returned empty text")
)

// ImageBytes 解码后的参考图
type ImageBytes struct {
	Data     []byte
	MimeType string
}

// ImageCall 单次图片服务调用
type ImageCall struct {
	Prompt string
	// Size 目标像素尺寸，例如 1024x1536
	Size      string
	Model     string
	Reference *ImageBytes
}
