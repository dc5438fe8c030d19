package llm

import (
	"context"
	"fmt"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"
)

// OpenAIConnector talks to any OpenAI-compatible chat completions server
// (vLLM, TGI, hosted gateways) that serves the configured model.
type OpenAIConnector struct {
	client openai.Client
	logger *zap.Logger
}

func NewOpenAIConnector(cfg config.LLMConfig, logger *zap.Logger) *OpenAIConnector {
	opts := []option.RequestOption{
		// one attempt per request
		option.WithMaxRetries(0),
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.RequestTimeout))
	}

	return &OpenAIConnector{
		client: openai.NewClient(opts...),
		logger: logger,
	}
}

func (c *OpenAIConnector) Name() string {
	return config.LLMBackendOpenAI
}

// Probe checks that the server knows the model.
func (c *OpenAIConnector) Probe(ctx context.Context, model string) error {
	m, err := c.client.Models.Get(ctx, model)
	if err != nil {
		return fmt.Errorf("get model %s: %w", model, err)
	}

	c.logger.Info("model is served by backend",
		zap.String("backend", c.Name()),
		zap.String("model", m.ID),
		zap.String("owned_by", m.OwnedBy),
	)

	return nil
}

// Complete sends the prompt as a single user message and returns the first choice.
func (c *OpenAIConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	ctxzap.Debug(ctx, "requesting chat completion",
		zap.String("model", req.Model),
		zap.Int("max_new_tokens", req.MaxNewTokens),
	)

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	}
	if req.MaxNewTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxNewTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", entity.ErrEmptyCompletion
	}

	ctxzap.Info(ctx, "chat completion received",
		zap.String("finish_reason", string(completion.Choices[0].FinishReason)),
		zap.Int64("completion_tokens", completion.Usage.CompletionTokens),
	)

	return completion.Choices[0].Message.Content, nil
}
