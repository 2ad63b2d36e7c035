package story

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// ChatModelFactory 应用层对文本模型的最小依赖（port），由基础设施层的 EinoFactory 实现
type ChatModelFactory interface {
	Get(ctx context.Context, name string) (model.BaseChatModel, error)
}
