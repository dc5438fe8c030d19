package concept

import (
	"context"

	"github.com/futig/edututor/internal/entity"
)

// Generator produces display text for a prompt; failures are returned as
// marker strings.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// Translator translates text into the target language code with automatic
// source detection.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

type HistoryRecorder interface {
	Record(ctx context.Context, record entity.HistoryRecord) error
}
