package story

import (
	"regexp"
	"strings"

	"carbon-story-api/internal/domain/entity"
)

var compositionTagPattern = regexp.MustCompile(`(?is)<composition>(.*?)</composition>`)

// ParseScenario 拆分剧情正文与 <Composition> 姿态标签
func ParseScenario(raw string) entity.ScenarioResult {
	res, _ := parseScenario(raw)
	return res
}

// parseScenario 第二个返回值表示是否使用了兜底姿态
func parseScenario(raw string) (entity.ScenarioResult, bool) {
	m := compositionTagPattern.FindStringSubmatch(raw)
	if m == nil {
		return entity.ScenarioResult{
			Scenario:    strings.TrimSpace(raw),
			Composition: entity.DefaultComposition,
		}, true
	}

	text := strings.TrimSpace(compositionTagPattern.ReplaceAllString(raw, ""))
	pose := strings.TrimSpace(m[1])
	if pose == "" {
		return entity.ScenarioResult{Scenario: text, Composition: entity.DefaultComposition}, true
	}
	return entity.ScenarioResult{Scenario: text, Composition: pose}, false
}
