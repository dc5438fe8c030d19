package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/futig/edututor/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Generator turns model calls into display strings. Failures come back as
// marker-prefixed text, never as errors or panics.
type Generator struct {
	handle  *Handle
	counter TokenCounter
}

// NewGenerator wraps the handle. counter may be nil.
func NewGenerator(handle *Handle, counter TokenCounter) *Generator {
	return &Generator{
		handle:  handle,
		counter: counter,
	}
}

func (g *Generator) Enabled() bool {
	return g.handle.Enabled()
}

func (g *Generator) Generate(ctx context.Context, prompt string) (out string) {
	if !g.handle.Enabled() {
		return entity.MsgModelNotLoaded
	}

	defer func() {
		if r := recover(); r != nil {
			ctxzap.Error(ctx, "generation panicked", zap.Any("panic", r))
			out = entity.PrefixGenerationError + fmt.Sprint(r)
		}
	}()

	fields := []zap.Field{zap.Int("prompt_chars", len(prompt))}
	if g.counter != nil {
		fields = append(fields, zap.Int("prompt_tokens", g.counter.Count(prompt)))
	}
	ctxzap.Info(ctx, "generating", fields...)

	start := time.Now()
	out, err := g.handle.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, entity.ErrModelNotLoaded) {
			return entity.MsgModelNotLoaded
		}
		ctxzap.Error(ctx, "generation failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return entity.PrefixGenerationError + err.Error()
	}

	ctxzap.Info(ctx, "generation finished",
		zap.Int("output_chars", len(out)),
		zap.Duration("duration", time.Since(start)),
	)

	return out
}
