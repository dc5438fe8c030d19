package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"go.uber.org/zap"
)

// Handle is the process-wide model handle. It is created once by Load and
// never reloaded; a disabled handle refuses every generation.
type Handle struct {
	backend      Backend
	model        string
	maxNewTokens int
	enabled      bool
	loadErr      error
}

// Load probes the backend for the configured model. It never fails: any error
// produces a disabled handle so the process can keep serving the surface.
func Load(ctx context.Context, backend Backend, cfg config.LLMConfig, logger *zap.Logger) *Handle {
	h := &Handle{
		backend:      backend,
		model:        cfg.Model,
		maxNewTokens: cfg.MaxNewTokens,
	}

	if backend == nil {
		h.loadErr = errors.New("no generation backend configured")
	} else {
		h.loadErr = retry.Do(
			func() error {
				return backend.Probe(ctx, cfg.Model)
			},
			append(cfg.ProbeRetry.ToRetryOptions(),
				retry.Context(ctx),
				retry.OnRetry(func(n uint, err error) {
					logger.Warn("model probe failed, retrying",
						zap.Uint("attempt", n+1),
						zap.Error(err),
					)
				}),
			)...,
		)
	}

	if h.loadErr != nil {
		logger.Error("model loading failed",
			zap.String("model", cfg.Model),
			zap.Error(h.loadErr),
		)
		return h
	}

	h.enabled = true
	logger.Info("model loaded",
		zap.String("model", cfg.Model),
		zap.String("backend", backend.Name()),
		zap.Int("max_new_tokens", cfg.MaxNewTokens),
	)

	return h
}

func (h *Handle) Enabled() bool {
	return h != nil && h.enabled
}

func (h *Handle) ModelName() string {
	if h == nil {
		return ""
	}
	return h.model
}

func (h *Handle) BackendName() string {
	if h == nil || h.backend == nil {
		return ""
	}
	return h.backend.Name()
}

// LoadError is the probe failure that disabled the handle, if any.
func (h *Handle) LoadError() error {
	if h == nil {
		return entity.ErrModelNotLoaded
	}
	return h.loadErr
}

// Status describes the handle for the model endpoint.
func (h *Handle) Status() entity.ModelStatus {
	return entity.ModelStatus{
		Model:   h.ModelName(),
		Backend: h.BackendName(),
		Enabled: h.Enabled(),
	}
}

// Generate runs a single completion with the fixed output budget.
func (h *Handle) Generate(ctx context.Context, prompt string) (string, error) {
	if !h.Enabled() {
		return "", entity.ErrModelNotLoaded
	}

	out, err := h.backend.Complete(ctx, &entity.CompletionRequest{
		Model:        h.model,
		Prompt:       prompt,
		MaxNewTokens: h.maxNewTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", h.backend.Name(), err)
	}

	return out, nil
}
