package handlers

import (
	"strings"

	"github.com/futig/edututor/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Telegram rejects messages longer than 4096 characters.
const maxMessageLength = 4096

// MessageSender provides centralized message sending functionality
type MessageSender struct {
	bot    BotAPI
	logger *zap.Logger
}

func NewMessageSender(bot BotAPI, logger *zap.Logger) *MessageSender {
	return &MessageSender{
		bot:    bot,
		logger: logger,
	}
}

// Send sends a message to the specified chat. Long texts are split and the
// markup is attached to the last part. Blank texts are replaced with a
// placeholder.
func (s *MessageSender) Send(chatID int64, text string, markup interface{}) error {
	if strings.TrimSpace(text) == "" {
		text = render.MsgEmptyReply
	}

	chunks := render.Chunks(text, maxMessageLength)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if markup != nil && i == len(chunks)-1 {
			msg.ReplyMarkup = markup
		}

		if _, err := s.bot.Send(msg); err != nil {
			s.logger.Error("failed to send message",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
			)
			return err
		}
	}

	return nil
}
