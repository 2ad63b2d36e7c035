package story

import (
	"regexp"
	"strings"
)

var promptLabelPattern = regexp.MustCompile(`(?i)^\s*\**\s*prompt\s*\**\s*:\s*\**\s*`)

// StripPromptLabel 去掉模型输出开头的 "Prompt:" 标签
func StripPromptLabel(s string) string {
	return strings.TrimSpace(promptLabelPattern.ReplaceAllString(strings.TrimSpace(s), ""))
}
