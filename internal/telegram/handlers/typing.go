package handlers

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TypingNotifier sends periodic "typing" actions to show bot activity
type TypingNotifier struct {
	bot      BotAPI
	chatID   int64
	interval time.Duration
	done     chan struct{}
	logger   *zap.Logger
	started  bool
}

func NewTypingNotifier(bot BotAPI, chatID int64, logger *zap.Logger) *TypingNotifier {
	return &TypingNotifier{
		bot:      bot,
		chatID:   chatID,
		interval: 4 * time.Second,
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Start begins sending typing indicators. The action expires after five
// seconds on the client, so it is repeated every four.
func (t *TypingNotifier) Start(ctx context.Context) {
	if t.started {
		return
	}
	t.started = true

	t.send()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				t.send()
			case <-t.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops sending typing indicators
func (t *TypingNotifier) Stop() {
	if !t.started {
		return
	}

	close(t.done)
	t.started = false
}

func (t *TypingNotifier) send() {
	action := tgbotapi.NewChatAction(t.chatID, tgbotapi.ChatTyping)
	if _, err := t.bot.Request(action); err != nil {
		t.logger.Warn("failed to send typing action",
			zap.Error(err),
			zap.Int64("chat_id", t.chatID),
		)
	}
}
