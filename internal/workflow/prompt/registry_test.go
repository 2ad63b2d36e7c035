package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCachesTemplates(t *testing.T) {
	r := NewRegistry()

	first, err := r.ChatTemplate(PromptScenarioV1)
	require.NoError(t, err)
	second, err := r.ChatTemplate(PromptScenarioV1)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = r.ChatTemplate(PromptID("missing_v9"))
	assert.Error(t, err)
}

func TestRenderImageTemplates(t *testing.T) {
	r := NewRegistry()
	vars := map[string]any{
		"scenario_kind":    "prologue",
		"title":            "Untitled",
		"scenario_text":    "바다가 도시를 삼키기 시작했다. {not a placeholder}",
		"character":        "a Korean woman in their twenties",
		"background":       "set in a dense modern city",
		"style_tags":       "photorealistic",
		"visual_structure": "medium shot, standing naturally",
	}

	for _, id := range []PromptID{PromptImageStandardV1, PromptImageSafeV1} {
		t.Run(string(id), func(t *testing.T) {
			out, err := r.Render(context.Background(), id, vars)
			require.NoError(t, err)
			assert.Contains(t, out, "{not a placeholder}")
			assert.Contains(t, out, "medium shot, standing naturally")
			assert.NotContains(t, out, "{visual_structure}")
		})
	}
}
