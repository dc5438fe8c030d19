package translation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/integration/common"
	pkghttp "github.com/futig/edututor/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const autoSource = "auto"

// LibreConnector translates through a LibreTranslate compatible /translate endpoint.
type LibreConnector struct {
	config    config.TranslateConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewLibreConnector(cfg config.TranslateConfig, logger *zap.Logger) *LibreConnector {
	return &LibreConnector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Translate detects the source language automatically.
func (c *LibreConnector) Translate(ctx context.Context, text, target string) (string, error) {
	ctxzap.Info(ctx, "translating via libretranslate",
		zap.String("target", target),
		zap.Int("text_length", len(text)),
	)

	req := &entity.LibreTranslateRequest{
		Q:      text,
		Source: autoSource,
		Target: target,
		Format: "text",
		APIKey: c.config.APIKey,
	}

	var resp entity.LibreTranslateResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.TranslateEndpoint, req, &resp); err != nil {
		return "", fmt.Errorf("libretranslate: %w", err)
	}

	if resp.TranslatedText == "" && text != "" {
		return "", entity.ErrEmptyTranslation
	}

	return resp.TranslatedText, nil
}
