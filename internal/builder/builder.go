package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/edututor/internal/api"
	accessapi "github.com/futig/edututor/internal/api/access"
	exportapi "github.com/futig/edututor/internal/api/export"
	tutorapi "github.com/futig/edututor/internal/api/tutor"
	"github.com/futig/edututor/internal/telegram"
	"go.uber.org/zap"
)

// Build wires the HTTP application for the given environment
func Build(environment string) (*App, error) {
	ctx := context.Background()

	tutor, err := loadTutor(ctx, environment)
	if err != nil {
		return nil, err
	}
	cfg, logger := tutor.Config, tutor.Logger

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	router := newRouter(tutor)
	logger.Info("HTTP router configured")

	// Generation may take minutes on CPU, so no write timeout is set
	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		tutor:  tutor,
		logger: logger,
	}, nil
}

func newRouter(tutor *Tutor) http.Handler {
	handlers := api.Handlers{
		Access: accessapi.NewHandler(tutor.Gate, tutor.Model),
		Tutor:  tutorapi.NewHandler(tutor.Explainer, tutor.Quiz, tutor.Config.FileUploadCfg, tutor.Validator),
		Export: exportapi.NewHandler(tutor.Formats, tutor.Validator),
		Gate:   tutor.Gate,
	}

	return api.SetupRouter(handlers, tutor.Config.RequestTimeout, tutor.Logger)
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot(environment string) (telegram.Bot, *Tutor, error) {
	ctx := context.Background()

	tutor, err := loadTutor(ctx, environment)
	if err != nil {
		return nil, nil, err
	}

	if tutor.Config.TelegramCfg.BotToken == "" {
		tutor.Close()
		return nil, nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	tutor.Logger.Info("Building Telegram bot",
		zap.String("environment", tutor.Config.Environment),
	)

	bot, err := telegram.NewBot(&tutor.Config.TelegramCfg, telegram.Deps{
		Gate:      tutor.Gate,
		Explainer: tutor.Explainer,
		Quiz:      tutor.Quiz,
		Validator: tutor.Validator,
	}, tutor.Logger)
	if err != nil {
		tutor.Close()
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	tutor.Logger.Info("Telegram bot built successfully")

	return bot, tutor, nil
}

// BuildTutor wires the tutor for one-shot use from the command line
func BuildTutor(ctx context.Context, environment string) (*Tutor, error) {
	return loadTutor(ctx, environment)
}
