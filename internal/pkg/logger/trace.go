package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 请求/任务链路标识在 Context 中的键名。
// HTTP 请求由中间件写入，定时同步任务自行生成 job- 前缀的标识。
const TraceIDKey = "trace_id"

// ContextHandler 从 ctx 中取出链路标识附加到每条日志上
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String("trace_id", traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
