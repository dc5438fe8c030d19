package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/go-resty/resty/v2"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const defaultOllamaURL = "http://localhost:11434"

// OllamaConnector generates text with a model served by a local Ollama daemon.
type OllamaConnector struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewOllamaConnector(cfg config.LLMConfig, logger *zap.Logger) *OllamaConnector {
	base := cfg.BaseURL
	if base == "" {
		base = defaultOllamaURL
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetHeader("Content-Type", "application/json")
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &OllamaConnector{
		http:   client,
		logger: logger,
	}
}

func (c *OllamaConnector) Name() string {
	return config.LLMBackendOllama
}

// Probe checks that the model has been pulled into the daemon.
func (c *OllamaConnector) Probe(ctx context.Context, model string) error {
	var tags entity.OllamaTagsResponse
	resp, err := c.http.R().SetContext(ctx).SetResult(&tags).Get("/api/tags")
	if err != nil {
		return fmt.Errorf("ollama list models: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("ollama list models: %s; body: %s", resp.Status(), resp.String())
	}

	for _, m := range tags.Models {
		if m.Name == model || m.Model == model || m.Name == model+":latest" {
			c.logger.Info("model is available in ollama", zap.String("model", m.Name))
			return nil
		}
	}

	return fmt.Errorf("model %s is not pulled in ollama (%d models available)", model, len(tags.Models))
}

func (c *OllamaConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Debug(ctx, "requesting ollama generation",
		zap.String("model", req.Model),
		zap.Int("max_new_tokens", req.MaxNewTokens),
	)

	body := entity.OllamaGenerateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		Stream: false,
	}
	if req.MaxNewTokens > 0 {
		body.Options = map[string]any{"num_predict": req.MaxNewTokens}
	}

	var out entity.OllamaGenerateResponse
	resp, err := c.http.R().SetContext(ctx).SetBody(body).SetResult(&out).Post("/api/generate")
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ollama generate: %s; body: %s", resp.Status(), resp.String())
	}

	ctxzap.Info(ctx, "ollama generation received", zap.Int("result_length", len(out.Response)))

	return out.Response, nil
}
