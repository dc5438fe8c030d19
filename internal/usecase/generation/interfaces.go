package generation

import (
	"context"

	"github.com/futig/edututor/internal/entity"
)

// Backend is a text-generation service that can serve the configured model.
type Backend interface {
	Name() string
	Probe(ctx context.Context, model string) error
	Complete(ctx context.Context, req *entity.CompletionRequest) (string, error)
}

// TokenCounter reports prompt sizes for logging.
type TokenCounter interface {
	Count(text string) int
}
