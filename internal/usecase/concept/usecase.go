package concept

import (
	"context"
	"fmt"

	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/logger"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const promptTemplate = "Explain '%s' simply for a 15-year-old with real examples."

// Explainer answers concept questions in the requested language.
type Explainer struct {
	generator  Generator
	translator Translator
	history    HistoryRecorder
}

// NewExplainer wires the handler. translator and history may be nil; without a
// translator every non-default language ends in a translation failure.
func NewExplainer(generator Generator, translator Translator, history HistoryRecorder) *Explainer {
	return &Explainer{
		generator:  generator,
		translator: translator,
		history:    history,
	}
}

// Prompt builds the explanation prompt for a concept.
func Prompt(concept string) string {
	return fmt.Sprintf(promptTemplate, concept)
}

// Explain generates an explanation and translates it unless lang is the
// default language. A failed translation never leaks the untranslated text.
func (e *Explainer) Explain(ctx context.Context, concept string, lang entity.Language) string {
	ctx = logger.AddFields(logger.WithUsecase(ctx, "explain"), zap.String("language", string(lang)))

	out := e.explain(ctx, concept, lang)
	e.record(ctx, concept, lang, out)

	return out
}

func (e *Explainer) explain(ctx context.Context, concept string, lang entity.Language) string {
	output := e.generator.Generate(ctx, Prompt(concept))

	if lang.IsDefault() {
		return output
	}

	if e.translator == nil {
		return entity.PrefixTranslationFail + entity.ErrTranslatorNotConfigured.Error()
	}

	translated, err := e.translator.Translate(ctx, output, lang.Code())
	if err != nil {
		ctxzap.Warn(ctx, "translation failed", zap.Error(err))
		return entity.PrefixTranslationFail + err.Error()
	}

	return translated
}

func (e *Explainer) record(ctx context.Context, concept string, lang entity.Language, out string) {
	if e.history == nil {
		return
	}

	err := e.history.Record(ctx, entity.HistoryRecord{
		Kind:        entity.RequestKindExplain,
		Input:       concept,
		Language:    string(lang),
		OutputChars: len(out),
		Failed:      entity.IsFailureOutput(out),
	})
	if err != nil {
		ctxzap.Warn(ctx, "failed to record history", zap.Error(err))
	}
}
