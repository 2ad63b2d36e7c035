package story

import (
	"context"
	"strings"

	"carbon-story-api/internal/domain/catalog"
	"carbon-story-api/internal/domain/entity"
	workflowprompt "carbon-story-api/internal/workflow/prompt"
	"carbon-story-api/pkg/logger"
	"carbon-story-api/pkg/metrics"
)

var defaultPromptRegistry = workflowprompt.NewRegistry()

// ScenarioLanguage 剧情输出语言，与角色国籍无关
const ScenarioLanguage = "Korean"

// buildEndingContext 结局名只用于约束模型，不得出现在正文
func buildEndingContext(ending entity.Ending, prologue string, suggestion string) string {
	var b strings.Builder
	b.WriteString("Ending directive: ")
	b.WriteString(strings.TrimSpace(ending.Directive))
	b.WriteString("\nFollow the ending directive strictly. Never state the ending's name (")
	b.WriteString(ending.Title)
	b.WriteString(") or label the outcome explicitly; let the scene show it.")
	b.WriteString("\n\n<prologue>\n")
	b.WriteString(prologue)
	b.WriteString("\n</prologue>\n")
	b.WriteString("Continue from the prologue above. Keep the same protagonist, place and voice.")
	if s := strings.TrimSpace(suggestion); s != "" {
		b.WriteString("\nThe player also suggests: ")
		b.WriteString(s)
	}
	return b.String()
}

func valueOrUnknown(s string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return "unspecified"
}

// noteUnknownCodes 记录未翻译的枚举字段，每个请求调用一次
func noteUnknownCodes(ctx context.Context, c entity.CharacterProfile, bg entity.BackgroundProfile) []string {
	fields := catalog.UnknownCodes(c, bg)
	if len(fields) == 0 {
		return nil
	}
	for _, f := range fields {
		metrics.CatalogUnknownCodeTotal.WithLabelValues(f).Inc()
	}
	logger.Debug(ctx, "profile codes passed through untranslated", "fields", strings.Join(fields, ","))
	return fields
}
