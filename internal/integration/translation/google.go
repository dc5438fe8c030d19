package translation

import (
	"context"
	"fmt"
	"html"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// GoogleConnector uses the Cloud Translation v2 API. Leaving the source
// language unset makes the API detect it.
type GoogleConnector struct {
	service *translate.Service
	logger  *zap.Logger
}

func NewGoogleConnector(ctx context.Context, cfg config.TranslateConfig, logger *zap.Logger) (*GoogleConnector, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: TRANSLATE_API_KEY is empty", entity.ErrTranslatorNotConfigured)
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Url != "" {
		opts = append(opts, option.WithEndpoint(cfg.Url))
	}

	return newGoogleConnector(ctx, logger, opts...)
}

func newGoogleConnector(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleConnector, error) {
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create translate service: %w", err)
	}

	return &GoogleConnector{
		service: svc,
		logger:  logger,
	}, nil
}

func (c *GoogleConnector) Translate(ctx context.Context, text, target string) (string, error) {
	ctxzap.Info(ctx, "translating via google translate",
		zap.String("target", target),
		zap.Int("text_length", len(text)),
	)

	resp, err := c.service.Translations.List([]string{text}, target).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}

	if len(resp.Translations) == 0 {
		return "", entity.ErrEmptyTranslation
	}

	tr := resp.Translations[0]
	ctxzap.Debug(ctx, "translation received", zap.String("detected_source", tr.DetectedSourceLanguage))

	return html.UnescapeString(tr.TranslatedText), nil
}
