package story

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"carbon-story-api/internal/config"
)

type fakeChatModel struct {
	mu       sync.Mutex
	prompts  []string
	generate func(call int, prompt string) (*schema.Message, error)
}

func (m *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	m.mu.Lock()
	prompt := ""
	if len(input) > 0 {
		prompt = input[len(input)-1].Content
	}
	m.prompts = append(m.prompts, prompt)
	call := len(m.prompts)
	m.mu.Unlock()
	return m.generate(call, prompt)
}

func (m *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func (m *fakeChatModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

type fakeFactory struct {
	model *fakeChatModel
	err   error
	names []string
}

func (f *fakeFactory) Get(_ context.Context, name string) (model.BaseChatModel, error) {
	f.names = append(f.names, name)
	if f.err != nil {
		return nil, f.err
	}
	return f.model, nil
}

func replyWith(content string) func(int, string) (*schema.Message, error) {
	return func(int, string) (*schema.Message, error) {
		return schema.AssistantMessage(content, nil), nil
	}
}

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{DefaultProvider: "gemini"},
		Story: config.StoryConfig{
			ScenarioTemperature:    0.8,
			ImagePromptTemperature: 0.7,
		},
	}
}
