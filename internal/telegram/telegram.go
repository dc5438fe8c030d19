package telegram

import (
	"context"
	"time"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/telegram/bot"
	"github.com/futig/edututor/internal/telegram/handlers"
	"github.com/futig/edututor/internal/telegram/keyboard"
	"github.com/futig/edututor/internal/telegram/state"
	"go.uber.org/zap"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// Deps are the tutor components the bot exposes.
type Deps struct {
	Gate      handlers.Gate
	Explainer handlers.Explainer
	Quiz      handlers.QuizGenerator
	Validator handlers.DocumentValidator
}

// NewBot initializes the telegram bot with all dependencies
func NewBot(cfg *config.TelegramConfig, deps Deps, logger *zap.Logger) (Bot, error) {
	api, err := bot.NewAPI(cfg, logger)
	if err != nil {
		return nil, err
	}

	states := state.NewManager(state.NewCacheStorage(cfg.ChatStateTTL))
	downloader := handlers.NewHTTPDownloader(api, cfg.MaxPDFSize, time.Minute)

	handler := handlers.NewHandler(
		api,
		states,
		keyboard.NewBuilder(),
		deps.Gate,
		deps.Explainer,
		deps.Quiz,
		downloader,
		deps.Validator,
		logger,
	)

	logger.Info("telegram bot initialized successfully")

	return bot.New(api, cfg, handler, logger), nil
}
