package catalog

// 画风分组，按组返回渲染关键词
var (
	illustrationStyles = []string{"애니메이션", "웹툰", "2D 일러스트", "동화풍"}
	lineArtStyles      = []string{"라인 아트", "스케치"}
	paintingStyles     = []string{"수채화", "유화"}
	pixelStyles        = []string{"픽셀 아트"}
)

const (
	illustrationTags = "2D illustration, clean cel shading, vibrant colors, crisp outlines, expressive character design, highly detailed, masterpiece"
	lineArtTags      = "clean line art, monochrome ink linework, precise contours, minimal shading, high contrast, white background tones"
	paintingTags     = "painterly style, visible brush strokes, rich textured pigments, soft artistic lighting, fine art quality"
	pixelTags        = "pixel art, 16-bit retro game style, limited color palette, crisp pixels, no anti-aliasing"
	photorealTags    = "photorealistic, cinematic lighting, ultra detailed, realistic skin and fabric textures, natural color grading, 8k resolution"
)

// StyleTags 返回画风对应的渲染关键词，半写实、写实及未知画风使用写实关键词
func StyleTags(artStyle string) string {
	switch {
	case contains(illustrationStyles, artStyle):
		return illustrationTags
	case contains(lineArtStyles, artStyle):
		return lineArtTags
	case contains(paintingStyles, artStyle):
		return paintingTags
	case contains(pixelStyles, artStyle):
		return pixelTags
	default:
		return photorealTags
	}
}

func contains(group []string, v string) bool {
	for _, s := range group {
		if s == v {
			return true
		}
	}
	return false
}
