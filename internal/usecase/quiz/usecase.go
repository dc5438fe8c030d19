package quiz

import (
	"context"
	"fmt"
	"io"

	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const promptTemplate = `
Make 5 MCQs from this content:

%s

Format:
Qn: <question>
A. <option A>
B. <option B>
C. <option C>
D. <option D>
Correct Answer: <letter>
`

// QuizGenerator builds multiple-choice questions from the text of a PDF.
// The model output is returned as is; it is not parsed or validated.
type QuizGenerator struct {
	generator       Generator
	extractor       TextExtractor
	truncator       Truncator
	maxSourceTokens int
	history         HistoryRecorder
}

type Option func(*QuizGenerator)

// WithSourceBudget truncates extracted text to maxTokens before prompting.
func WithSourceBudget(t Truncator, maxTokens int) Option {
	return func(q *QuizGenerator) {
		q.truncator = t
		q.maxSourceTokens = maxTokens
	}
}

func WithHistory(h HistoryRecorder) Option {
	return func(q *QuizGenerator) {
		q.history = h
	}
}

func NewQuizGenerator(generator Generator, extractor TextExtractor, opts ...Option) *QuizGenerator {
	q := &QuizGenerator{
		generator: generator,
		extractor: extractor,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Prompt builds the quiz prompt around the source text.
func Prompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// FromPDF reads file and asks the model for five questions. A nil file, an
// unreadable PDF or a PDF without a text layer produce marker strings; the
// last two never reach the model.
func (q *QuizGenerator) FromPDF(ctx context.Context, file io.ReaderAt, size int64) string {
	ctx = logger.WithUsecase(ctx, "quiz")

	out := q.fromPDF(ctx, file, size)
	q.record(ctx, size, out)

	return out
}

func (q *QuizGenerator) fromPDF(ctx context.Context, file io.ReaderAt, size int64) string {
	if file == nil {
		return entity.PrefixPDFError + fmt.Errorf("%w: no file provided", entity.ErrInvalidFile).Error()
	}

	text, err := q.extractor.ExtractText(file, size)
	if err != nil {
		ctxzap.Warn(ctx, "pdf extraction failed", zap.Error(err))
		return entity.PrefixPDFError + err.Error()
	}

	if text == "" {
		ctxzap.Info(ctx, "pdf has no extractable text", zap.Int64("size", size))
		return entity.MsgNoTextInPDF
	}

	if q.truncator != nil && q.maxSourceTokens > 0 {
		truncated := q.truncator.Truncate(text, q.maxSourceTokens)
		if len(truncated) < len(text) {
			ctxzap.Info(ctx, "pdf text truncated to token budget",
				zap.Int("max_tokens", q.maxSourceTokens),
				zap.Int("original_chars", len(text)),
				zap.Int("kept_chars", len(truncated)),
			)
		}
		text = truncated
	}

	return q.generator.Generate(ctx, Prompt(text))
}

func (q *QuizGenerator) record(ctx context.Context, size int64, out string) {
	if q.history == nil {
		return
	}

	err := q.history.Record(ctx, entity.HistoryRecord{
		Kind:        entity.RequestKindQuiz,
		Input:       fmt.Sprintf("pdf:%d bytes", size),
		OutputChars: len(out),
		Failed:      entity.IsFailureOutput(out),
	})
	if err != nil {
		ctxzap.Warn(ctx, "failed to record history", zap.Error(err))
	}
}
