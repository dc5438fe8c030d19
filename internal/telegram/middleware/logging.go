package middleware

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// LoggingMiddleware logs all incoming updates
type LoggingMiddleware struct {
	logger *zap.Logger
}

func NewLoggingMiddleware(logger *zap.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: logger,
	}
}

// Handle logs the update before and after next runs
func (m *LoggingMiddleware) Handle(update tgbotapi.Update, next func(tgbotapi.Update)) {
	start := time.Now()
	chatID, updateType := describe(update)

	m.logger.Info("telegram update received",
		zap.Int64("chat_id", chatID),
		zap.String("type", updateType),
		zap.Int("update_id", update.UpdateID),
	)

	next(update)

	m.logger.Info("telegram update processed",
		zap.Int64("chat_id", chatID),
		zap.Duration("duration", time.Since(start)),
	)
}

func describe(update tgbotapi.Update) (int64, string) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		return update.Message.Chat.ID, "command"
	case update.Message != nil && update.Message.Document != nil:
		return update.Message.Chat.ID, "document"
	case update.Message != nil && update.Message.Text != "":
		return update.Message.Chat.ID, "text"
	case update.Message != nil:
		return update.Message.Chat.ID, "other"
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID, "callback"
	default:
		return 0, "unsupported"
	}
}
