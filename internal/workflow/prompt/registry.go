// Package prompt 管理内嵌的提示词模板
package prompt

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type PromptID string

const (
	PromptScenarioV1      PromptID = "scenario_v1"
	PromptImageStandardV1 PromptID = "image_prompt_standard_v1"
	PromptImageSafeV1     PromptID = "image_prompt_safe_v1"
)

type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]einoprompt.ChatTemplate
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]einoprompt.ChatTemplate),
	}
}

// ChatTemplate 返回模板，首次使用时从内嵌文件加载
func (r *Registry) ChatTemplate(id PromptID) (einoprompt.ChatTemplate, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if tpl, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[id]; ok {
		return tpl, nil
	}

	user, err := readEmbeddedText(resolvePromptFile(id))
	if err != nil {
		return nil, fmt.Errorf("unknown prompt id %s: %w", id, err)
	}

	tpl := einoprompt.FromMessages(schema.FString, schema.UserMessage(user))
	r.cache[id] = tpl
	return tpl, nil
}

// Render 渲染模板并返回单条用户消息的文本
func (r *Registry) Render(ctx context.Context, id PromptID, vars map[string]any) (string, error) {
	tpl, err := r.ChatTemplate(id)
	if err != nil {
		return "", err
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("format prompt %s: %w", id, err)
	}
	if len(msgs) == 0 || msgs[len(msgs)-1] == nil {
		return "", fmt.Errorf("prompt %s rendered no message", id)
	}
	return strings.TrimSpace(msgs[len(msgs)-1].Content), nil
}

func resolvePromptFile(id PromptID) string {
	return "templates/" + string(id) + ".txt"
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
