package tutor

import (
	"context"
	"io"

	"github.com/futig/edututor/internal/entity"
)

type Explainer interface {
	Explain(ctx context.Context, concept string, lang entity.Language) string
}

type QuizGenerator interface {
	FromPDF(ctx context.Context, file io.ReaderAt, size int64) string
}
