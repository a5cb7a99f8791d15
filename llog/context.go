package llog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type loggerKey struct{}

// WithLogger 将 logger 注入 context
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext 从 context 获取 logger（不存在则返回全局 logger）
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
		return logger
	}
	return log
}

// WithRunID 注入带 runId 的 logger, runID 为空时生成一个
func WithRunID(ctx context.Context, runID string) (context.Context, string) {
	if runID == "" {
		runID = uuid.New().String()
	}

	return WithLogger(ctx, FromContext(ctx).With("runId", runID)), runID
}
