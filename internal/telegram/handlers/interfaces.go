package handlers

import (
	"context"
	"io"

	"github.com/futig/edututor/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the part of tgbotapi.BotAPI the handlers use.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Gate interface {
	Login(ctx context.Context, username, password string) entity.LoginResult
}

type Explainer interface {
	Explain(ctx context.Context, concept string, lang entity.Language) string
}

type QuizGenerator interface {
	FromPDF(ctx context.Context, file io.ReaderAt, size int64) string
}

// FileDownloader fetches a file previously uploaded to Telegram.
type FileDownloader interface {
	Download(ctx context.Context, fileID string) ([]byte, error)
}

type DocumentValidator interface {
	ValidateDocument(filename, contentType string, size int64) error
}
