// Package logger keeps a request-scoped zap logger in the context.
package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// AddFields adds fields to the logger in context and returns new context
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(fields...))
}

// WithAction tags the context logger with the flow being handled
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String("action", action))
}

// WithUsecase tags the context logger with the use case handling the request
func WithUsecase(ctx context.Context, usecase string) context.Context {
	return AddFields(ctx, zap.String("usecase", usecase))
}
