package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/telegram/handlers"
	"github.com/futig/edututor/internal/telegram/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Bot represents the Telegram bot
type Bot struct {
	api         *tgbotapi.BotAPI
	cfg         *config.TelegramConfig
	handler     *handlers.Handler
	logger      *zap.Logger
	loggingMW   *middleware.LoggingMiddleware
	recoveryMW  *middleware.RecoveryMiddleware
	updatesChan tgbotapi.UpdatesChannel
	stopChan    chan struct{}
	wg          sync.WaitGroup
}

// NewAPI authorizes the bot token against Telegram
func NewAPI(cfg *config.TelegramConfig, logger *zap.Logger) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	return api, nil
}

// New creates a new Telegram bot
func New(api *tgbotapi.BotAPI, cfg *config.TelegramConfig, handler *handlers.Handler, logger *zap.Logger) *Bot {
	return &Bot{
		api:        api,
		cfg:        cfg,
		handler:    handler,
		logger:     logger,
		loggingMW:  middleware.NewLoggingMiddleware(logger),
		recoveryMW: middleware.NewRecoveryMiddleware(logger, api),
		stopChan:   make(chan struct{}),
	}
}

// Start starts the bot
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting telegram bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout
	b.updatesChan = b.api.GetUpdatesChan(u)

	ctx = ctxzap.ToContext(ctx, b.logger)
	go b.processUpdates(ctx)

	b.logger.Info("telegram bot started successfully")
	return nil
}

// Stop stops the bot gracefully with timeout
func (b *Bot) Stop() error {
	b.logger.Info("stopping telegram bot")

	close(b.stopChan)
	b.api.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	shutdownTimeout := time.Duration(b.cfg.ShutdownTimeout) * time.Second
	select {
	case <-done:
		b.logger.Info("all handlers completed gracefully")
	case <-time.After(shutdownTimeout):
		b.logger.Warn("shutdown timeout exceeded, some handlers may not have completed",
			zap.Duration("timeout", shutdownTimeout),
		)
		return fmt.Errorf("shutdown timeout exceeded")
	}

	b.logger.Info("telegram bot stopped successfully")
	return nil
}

func (b *Bot) processUpdates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			ctxzap.Info(ctx, "context cancelled, stopping update processing")
			return
		case <-b.stopChan:
			ctxzap.Info(ctx, "stop signal received, stopping update processing")
			return
		case update, ok := <-b.updatesChan:
			if !ok {
				return
			}
			b.wg.Add(1)
			go func(u tgbotapi.Update) {
				defer b.wg.Done()
				b.handleUpdateWithMiddleware(ctx, u)
			}(update)
		}
	}
}

func (b *Bot) handleUpdateWithMiddleware(ctx context.Context, update tgbotapi.Update) {
	b.loggingMW.Handle(update, func(u tgbotapi.Update) {
		b.recoveryMW.Handle(u, func(u2 tgbotapi.Update) {
			b.handleUpdate(ctx, u2)
		})
	})
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if query := update.CallbackQuery; query != nil && query.Message != nil {
		b.handler.HandleCallback(ctx, &handlers.Message{
			ChatID:       query.Message.Chat.ID,
			UserID:       query.From.ID,
			MessageID:    query.Message.MessageID,
			CallbackData: query.Data,
			CallbackID:   query.ID,
		})
		return
	}

	if update.Message != nil {
		b.handler.HandleMessage(ctx, toMessage(update.Message))
	}
}

func toMessage(m *tgbotapi.Message) *handlers.Message {
	msg := &handlers.Message{
		ChatID:    m.Chat.ID,
		MessageID: m.MessageID,
		Text:      m.Text,
		Document:  m.Document,
	}
	if m.From != nil {
		msg.UserID = m.From.ID
	}
	if m.IsCommand() {
		msg.Command = m.Command()
		msg.Arguments = m.CommandArguments()
		msg.Text = ""
	}
	return msg
}
