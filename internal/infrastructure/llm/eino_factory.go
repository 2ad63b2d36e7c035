// Package llm 提供基于 Eino 的文本模型客户端
package llm

import (
	"context"
	"fmt"
	"sync"

	"carbon-story-api/internal/config"
	apperrors "carbon-story-api/pkg/errors"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// EinoFactory 管理多个 Eino ChatModel 客户端实例
type EinoFactory struct {
	config *config.LLMConfig
	models map[string]model.BaseChatModel
	mu     sync.RWMutex
}

// NewEinoFactory 创建 Eino LLM 工厂
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{
		config: &cfg.LLM,
		models: make(map[string]model.BaseChatModel),
	}
}

// Get 获取指定名称的 ChatModel，未指定时使用默认提供商
func (f *EinoFactory) Get(ctx context.Context, name string) (model.BaseChatModel, error) {
	if name == "" {
		name = f.config.DefaultProvider
	}

	f.mu.RLock()
	m, ok := f.models[name]
	f.mu.RUnlock()
	if ok {
		return m, nil
	}

	// 惰性加载
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok = f.models[name]; ok {
		return m, nil
	}

	providerCfg, ok := f.config.Providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", name)
	}
	if !providerCfg.Configured() {
		return nil, apperrors.ErrProviderNotConfigured
	}

	chatModel, err := openai.NewChatModel(ctx, newChatModelConfig(providerCfg))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMProviderError,
			fmt.Sprintf("failed to create chat model for %s", name))
	}

	f.models[name] = chatModel
	return chatModel, nil
}

// Configured 默认提供商是否已配置凭证
func (f *EinoFactory) Configured() bool {
	p, ok := f.config.Providers[f.config.DefaultProvider]
	return ok && p.Configured()
}

func newChatModelConfig(p config.ProviderConfig) *openai.ChatModelConfig {
	cfg := &openai.ChatModelConfig{
		APIKey:  p.APIKey,
		BaseURL: p.BaseURL,
		Model:   p.Model,
		Timeout: p.Timeout,
	}
	if p.MaxTokens > 0 {
		cfg.MaxTokens = ptr(p.MaxTokens)
	}
	if p.Temperature > 0 {
		cfg.Temperature = ptr(float32(p.Temperature))
	}
	return cfg
}

func ptr[T any](v T) *T {
	return &v
}
