package middleware

import (
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const panicReply = "❌ Something went wrong. Please try again."

// Sender is the part of the bot API used to notify the chat.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// RecoveryMiddleware recovers from panics
type RecoveryMiddleware struct {
	logger *zap.Logger
	bot    Sender
}

func NewRecoveryMiddleware(logger *zap.Logger, bot Sender) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logger: logger,
		bot:    bot,
	}
}

// Handle recovers from panics in next and tells the chat about the failure
func (m *RecoveryMiddleware) Handle(update tgbotapi.Update, next func(tgbotapi.Update)) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		m.logger.Error("panic recovered in telegram handler",
			zap.Any("panic", r),
			zap.String("stack", string(debug.Stack())),
			zap.Int("update_id", update.UpdateID),
		)

		chatID, _ := describe(update)
		if chatID == 0 {
			return
		}

		if _, err := m.bot.Send(tgbotapi.NewMessage(chatID, panicReply)); err != nil {
			m.logger.Error("failed to send error message",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
			)
		}
	}()

	next(update)
}
