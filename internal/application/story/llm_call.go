package story

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"carbon-story-api/internal/domain/entity"
	"carbon-story-api/internal/domain/service"
	apperrors "carbon-story-api/pkg/errors"
)

// textCompleter 单轮文本补全
type textCompleter struct {
	factory     ChatModelFactory
	provider    string
	temperature float32
}

func (c *textCompleter) complete(ctx context.Context, workflow string, prompt string) (string, error) {
	if c.factory == nil {
		return "", fmt.Errorf("llm factory not configured")
	}

	ctx = service.WithWorkflowProvider(ctx, workflow, c.provider)
	chatModel, err := c.factory.Get(ctx, c.provider)
	if err != nil {
		return "", err
	}

	out, err := chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)},
		model.WithTemperature(c.temperature))
	if err != nil {
		return "", err
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", entity.ErrEmptyText
	}
	return strings.TrimSpace(out.Content), nil
}

// classifyTextError 将文本生成错误映射为应用错误
func classifyTextError(err error, code apperrors.ErrorCode, message string) error {
	if apperrors.IsAppError(err) {
		return err
	}
	if errors.Is(err, entity.ErrEmptyText) {
		return apperrors.Wrap(err, apperrors.CodeEmptyProviderResult, "text provider returned an empty result")
	}
	return apperrors.Wrap(err, code, message)
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
