package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/edututor/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is an in-process backend used when ENABLE_MOCKS is set.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Name() string {
	return "mock"
}

func (m *MockConnector) Probe(ctx context.Context, model string) error {
	m.logger.Info("[MOCK] model probe", zap.String("model", model))
	return nil
}

// Complete answers quiz prompts with five well-formed MCQs and everything else
// with a short explanation.
func (m *MockConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating text", zap.Int("prompt_length", len(req.Prompt)))

	if strings.Contains(req.Prompt, "Make 5 MCQs") {
		var b strings.Builder
		for i := 1; i <= 5; i++ {
			fmt.Fprintf(&b, "Q%d: Which statement matches the text?\n", i)
			b.WriteString("A. The first option\nB. The second option\nC. The third option\nD. The fourth option\n")
			b.WriteString("Correct Answer: A\n\n")
		}
		return strings.TrimSpace(b.String()), nil
	}

	return "Imagine you are explaining this to a friend. " +
		"It is a simple idea you meet every day: think of a ball falling to the ground " +
		"or a phone charging overnight.", nil
}
