package callback

import (
	"context"
	"strings"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/model"
	cbtemplate "github.com/cloudwego/eino/utils/callbacks"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"carbon-story-api/internal/domain/service"
	"carbon-story-api/pkg/logger"
	"carbon-story-api/pkg/metrics"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// callState 单次模型调用的观测状态，随 ctx 从 OnStart 传到 OnEnd/OnError
type callState struct {
	start    time.Time
	workflow string
	provider string
	model    string
}

type callStateKey struct{}

func callStateFrom(ctx context.Context) *callState {
	s, _ := ctx.Value(callStateKey{}).(*callState)
	return s
}

// finish 记录调用次数与耗时
func (s *callState) finish(status string) float64 {
	elapsed := time.Since(s.start).Seconds()
	metrics.LLMCallTotal.WithLabelValues(s.workflow, s.provider, s.model, status).Inc()
	metrics.LLMCallDuration.WithLabelValues(s.workflow, s.provider, s.model).Observe(elapsed)
	return elapsed
}

func newChatModelCallbackHandler() *cbtemplate.ModelCallbackHandler {
	return &cbtemplate.ModelCallbackHandler{
		OnStart: onModelStart,
		OnEnd:   onModelEnd,
		OnError: onModelError,
	}
}

func onModelStart(ctx context.Context, info *einocb.RunInfo, input *model.CallbackInput) context.Context {
	state := &callState{
		start:    time.Now(),
		workflow: service.WorkflowFromContext(ctx),
		provider: service.ProviderFromContext(ctx),
		model:    modelNameFromInput(input),
	}
	ctx = context.WithValue(ctx, callStateKey{}, state)

	attrs := []attribute.KeyValue{
		attribute.String("story.workflow", state.workflow),
		attribute.String("llm.provider", state.provider),
		attribute.String("llm.model", state.model),
	}
	if info != nil {
		attrs = append(attrs, attribute.String("eino.type", info.Type))
	}
	ctx, _ = otel.Tracer("eino").Start(ctx, "llm.generate", trace.WithAttributes(attrs...))

	logger.Debug(ctx, "llm call started",
		"workflow", state.workflow,
		"provider", state.provider,
		"model", state.model,
	)
	return ctx
}

func onModelEnd(ctx context.Context, _ *einocb.RunInfo, output *model.CallbackOutput) context.Context {
	state := callStateFrom(ctx)
	if state == nil {
		return ctx
	}
	if name := modelNameFromOutput(output); name != "" {
		state.model = name
	}
	elapsed := state.finish(statusSuccess)

	span := trace.SpanFromContext(ctx)
	defer span.End()

	if output != nil && output.TokenUsage != nil {
		usage := output.TokenUsage
		metrics.LLMTokensUsed.WithLabelValues(state.workflow, state.provider, state.model, "prompt").Add(float64(usage.PromptTokens))
		metrics.LLMTokensUsed.WithLabelValues(state.workflow, state.provider, state.model, "completion").Add(float64(usage.CompletionTokens))
		span.SetAttributes(
			attribute.Int("llm.prompt_tokens", usage.PromptTokens),
			attribute.Int("llm.completion_tokens", usage.CompletionTokens),
		)
	}

	// 空内容由应用层判定为失败，这里只留痕
	if output != nil && output.Message != nil && strings.TrimSpace(output.Message.Content) == "" {
		span.AddEvent("llm.empty_content")
		logger.Warn(ctx, "llm returned empty content", "workflow", state.workflow, "model", state.model)
	}

	logger.Debug(ctx, "llm call finished",
		"workflow", state.workflow,
		"model", state.model,
		"duration_ms", int64(elapsed*1000),
	)
	return ctx
}

func onModelError(ctx context.Context, _ *einocb.RunInfo, err error) context.Context {
	state := callStateFrom(ctx)
	if state == nil {
		return ctx
	}
	state.finish(statusError)

	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.End()
	return ctx
}

func modelNameFromInput(in *model.CallbackInput) string {
	if in == nil || in.Config == nil {
		return ""
	}
	return in.Config.Model
}

func modelNameFromOutput(out *model.CallbackOutput) string {
	if out == nil || out.Config == nil {
		return ""
	}
	return out.Config.Model
}
