package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-story-api/internal/config"
	apperrors "carbon-story-api/pkg/errors"
)

func factoryConfig(apiKey string) *config.Config {
	return &config.Config{LLM: config.LLMConfig{
		DefaultProvider: "gemini",
		Providers: map[string]config.ProviderConfig{
			"gemini": {
				APIKey:      apiKey,
				BaseURL:     "https://generativelanguage.googleapis.com/v1beta/openai/",
				Model:       "gemini-2.5-flash",
				MaxTokens:   2048,
				Temperature: 0.8,
				Timeout:     time.Minute,
			},
		},
	}}
}

func TestEinoFactoryGet(t *testing.T) {
	f := NewEinoFactory(factoryConfig("test-key"))
	assert.True(t, f.Configured())

	first, err := f.Get(context.Background(), "")
	require.NoError(t, err)
	second, err := f.Get(context.Background(), "gemini")
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = f.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestEinoFactoryNotConfigured(t *testing.T) {
	f := NewEinoFactory(factoryConfig(""))
	assert.False(t, f.Configured())

	_, err := f.Get(context.Background(), "")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeProviderNotConfigured))
}

func TestNewChatModelConfig(t *testing.T) {
	cfg := newChatModelConfig(config.ProviderConfig{APIKey: "k", Model: "m"})
	assert.Nil(t, cfg.MaxTokens)
	assert.Nil(t, cfg.Temperature)

	cfg = newChatModelConfig(factoryConfig("k").LLM.Providers["gemini"])
	require.NotNil(t, cfg.MaxTokens)
	assert.Equal(t, 2048, *cfg.MaxTokens)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.8, *cfg.Temperature, 1e-6)
}
