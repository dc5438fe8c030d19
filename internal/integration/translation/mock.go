package translation

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector tags the text with the target code instead of translating it.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Translate(ctx context.Context, text, target string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] translating text", zap.String("target", target))
	return fmt.Sprintf("[%s] %s", target, text), nil
}
