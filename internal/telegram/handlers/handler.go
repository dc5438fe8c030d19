package handlers

import (
	"bytes"
	"context"
	"strings"

	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/logger"
	"github.com/futig/edututor/internal/telegram/keyboard"
	"github.com/futig/edututor/internal/telegram/render"
	"github.com/futig/edututor/internal/telegram/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Message represents a normalized Telegram message
type Message struct {
	ChatID       int64
	UserID       int64
	MessageID    int
	Command      string
	Arguments    string
	Text         string
	Document     *tgbotapi.Document
	CallbackData string
	CallbackID   string
}

// Handler maps chat messages onto the tutor: commands manage the login toggle
// and language, text is explained, PDF documents become quizzes.
type Handler struct {
	bot        BotAPI
	sender     *MessageSender
	states     *state.Manager
	keyboard   *keyboard.Builder
	gate       Gate
	explainer  Explainer
	quiz       QuizGenerator
	downloader FileDownloader
	validator  DocumentValidator
	logger     *zap.Logger
}

func NewHandler(
	bot BotAPI,
	states *state.Manager,
	kb *keyboard.Builder,
	gate Gate,
	explainer Explainer,
	quiz QuizGenerator,
	downloader FileDownloader,
	validator DocumentValidator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		sender:     NewMessageSender(bot, logger),
		states:     states,
		keyboard:   kb,
		gate:       gate,
		explainer:  explainer,
		quiz:       quiz,
		downloader: downloader,
		validator:  validator,
		logger:     logger,
	}
}

// HandleMessage routes a message to the command, document or text flow.
func (h *Handler) HandleMessage(ctx context.Context, msg *Message) {
	ctx = logger.AddFields(ctx, zap.Int64("chat_id", msg.ChatID))

	switch {
	case msg.Command != "":
		h.handleCommand(ctx, msg)
	case msg.Document != nil:
		h.withLogin(ctx, msg, h.handleDocument)
	case strings.TrimSpace(msg.Text) != "":
		h.withLogin(ctx, msg, h.handleText)
	default:
		h.send(msg.ChatID, render.MsgHelp, nil)
	}
}

func (h *Handler) handleCommand(ctx context.Context, msg *Message) {
	ctx = logger.WithAction(ctx, "command:"+msg.Command)
	ctxzap.Info(ctx, "command received")

	switch msg.Command {
	case "start":
		h.send(msg.ChatID, render.MsgWelcome, nil)
	case "help":
		h.send(msg.ChatID, render.MsgHelp, nil)
	case "login":
		h.handleLogin(ctx, msg)
	case "logout":
		h.states.Lock(ctx, msg.ChatID)
		h.send(msg.ChatID, render.MsgLoggedOut, nil)
	case "lang":
		h.withLogin(ctx, msg, func(ctx context.Context, msg *Message) {
			current := h.states.Get(ctx, msg.ChatID).Language
			h.send(msg.ChatID, render.MsgChooseLanguage, h.keyboard.LanguageKeyboard(current))
		})
	default:
		h.send(msg.ChatID, render.ErrUnknownCommand, nil)
	}
}

func (h *Handler) handleLogin(ctx context.Context, msg *Message) {
	fields := strings.Fields(msg.Arguments)
	if len(fields) != 2 {
		h.send(msg.ChatID, render.MsgLoginUsage, nil)
		return
	}

	// the command carries the password in clear text
	if msg.MessageID != 0 {
		if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(msg.ChatID, msg.MessageID)); err != nil {
			ctxzap.Debug(ctx, "failed to delete login message", zap.Error(err))
		}
	}

	result := h.gate.Login(ctx, fields[0], fields[1])
	if result.Visible {
		h.states.Unlock(ctx, msg.ChatID)
		h.send(msg.ChatID, result.Status+"\n\n"+render.MsgHelp, nil)
		return
	}

	h.states.Lock(ctx, msg.ChatID)
	h.send(msg.ChatID, result.Status, nil)
}

func (h *Handler) handleText(ctx context.Context, msg *Message) {
	ctx = logger.WithAction(ctx, "explain")
	lang := h.states.Get(ctx, msg.ChatID).Language

	typing := NewTypingNotifier(h.bot, msg.ChatID, h.logger)
	typing.Start(ctx)
	out := h.explainer.Explain(ctx, strings.TrimSpace(msg.Text), lang)
	typing.Stop()

	h.send(msg.ChatID, out, nil)
}

func (h *Handler) handleDocument(ctx context.Context, msg *Message) {
	ctx = logger.WithAction(ctx, "quiz")
	doc := msg.Document

	if err := h.validator.ValidateDocument(doc.FileName, doc.MimeType, int64(doc.FileSize)); err != nil {
		ctxzap.Info(ctx, "document rejected", zap.String("file_name", doc.FileName), zap.Error(err))
		h.send(msg.ChatID, render.InvalidDocument(err), nil)
		return
	}

	typing := NewTypingNotifier(h.bot, msg.ChatID, h.logger)
	typing.Start(ctx)
	defer typing.Stop()

	data, err := h.downloader.Download(ctx, doc.FileID)
	if err != nil {
		ctxzap.Error(ctx, "failed to download document", zap.Error(err))
		h.send(msg.ChatID, render.InvalidDocument(err), nil)
		return
	}

	out := h.quiz.FromPDF(ctx, bytes.NewReader(data), int64(len(data)))
	typing.Stop()

	h.send(msg.ChatID, out, nil)
}

// HandleCallback applies inline keyboard choices.
func (h *Handler) HandleCallback(ctx context.Context, msg *Message) {
	ctx = logger.AddFields(ctx, zap.Int64("chat_id", msg.ChatID))

	data, err := keyboard.ParseCallback(msg.CallbackData)
	if err != nil || data.Action != keyboard.ActionLanguage {
		ctxzap.Warn(ctx, "unsupported callback", zap.String("data", msg.CallbackData))
		h.answerCallback(msg.CallbackID, render.ErrGeneric)
		return
	}

	if !h.states.Get(ctx, msg.ChatID).Unlocked {
		h.answerCallback(msg.CallbackID, "")
		h.send(msg.ChatID, render.MsgNeedLogin, nil)
		return
	}

	lang, err := entity.ParseLanguage(data.Value)
	if err != nil {
		h.answerCallback(msg.CallbackID, err.Error())
		return
	}

	h.states.SetLanguage(ctx, msg.ChatID, lang)
	h.answerCallback(msg.CallbackID, "")
	h.send(msg.ChatID, render.LanguageSet(lang), nil)
}

func (h *Handler) withLogin(ctx context.Context, msg *Message, next func(context.Context, *Message)) {
	if !h.states.Get(ctx, msg.ChatID).Unlocked {
		h.send(msg.ChatID, render.MsgNeedLogin, nil)
		return
	}
	next(ctx, msg)
}

func (h *Handler) send(chatID int64, text string, markup interface{}) {
	_ = h.sender.Send(chatID, text, markup)
}

func (h *Handler) answerCallback(callbackID, text string) {
	if callbackID == "" {
		return
	}
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Error("failed to answer callback",
			zap.Error(err),
			zap.String("callback_id", callbackID),
		)
	}
}
