package quiz

import (
	"context"
	"io"

	"github.com/futig/edututor/internal/entity"
)

type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// TextExtractor returns the joined text layer of a PDF.
type TextExtractor interface {
	ExtractText(r io.ReaderAt, size int64) (string, error)
}

// Truncator bounds source text to a token budget.
type Truncator interface {
	Truncate(text string, maxTokens int) string
}

type HistoryRecorder interface {
	Record(ctx context.Context, record entity.HistoryRecord) error
}
