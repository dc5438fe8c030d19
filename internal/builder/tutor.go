package builder

import (
	"context"
	"fmt"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/integration/llm"
	"github.com/futig/edututor/internal/integration/translation"
	"github.com/futig/edututor/internal/pkg/formatter"
	"github.com/futig/edututor/internal/pkg/pdftext"
	"github.com/futig/edututor/internal/pkg/tokens"
	"github.com/futig/edututor/internal/pkg/validator"
	"github.com/futig/edututor/internal/repository"
	"github.com/futig/edututor/internal/usecase/access"
	"github.com/futig/edututor/internal/usecase/concept"
	"github.com/futig/edututor/internal/usecase/generation"
	"github.com/futig/edututor/internal/usecase/quiz"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Tutor holds the components shared by every surface (HTTP, Telegram, CLI).
type Tutor struct {
	Config    *config.Config
	Logger    *zap.Logger
	Model     *generation.Handle
	Explainer *concept.Explainer
	Quiz      *quiz.QuizGenerator
	Gate      *access.Gate
	Validator *validator.Validator
	Formats   *formatter.Factory

	db *pgxpool.Pool
}

// Close releases the database pool, if any.
func (t *Tutor) Close() {
	if t.db != nil {
		t.db.Close()
	}
}

// loadTutor reads configuration for environment and wires the tutor.
func loadTutor(ctx context.Context, environment string) (*Tutor, error) {
	cfg, err := config.Load(environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	return buildTutor(ctx, cfg, logger)
}

func buildTutor(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Tutor, error) {
	t := &Tutor{
		Config: cfg,
		Logger: logger,
	}

	// Optional request history
	var history repository.HistoryRepository = repository.NoopHistory{}
	if cfg.DatabaseURL != "" {
		db, err := setupDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup database: %w", err)
		}

		logger.Info("Running database migrations")
		if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Database migrations completed successfully")

		t.db = db
		history = repository.NewHistoryPostgres(db)
	} else {
		logger.Info("DATABASE_URL is empty, request history is disabled")
	}

	// Initialize external service connectors (with mock support)
	var backend generation.Backend
	var translator concept.Translator

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		backend = llm.NewMockConnector(logger)
		translator = translation.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		backend = newBackend(cfg.LLMCfg, logger)
		translator = newTranslator(ctx, cfg.TranslateCfg, logger)
	}

	// Load the model once; failures leave it disabled
	t.Model = generation.Load(ctx, backend, cfg.LLMCfg, logger)

	// An empty encoding disables token accounting
	var counter *tokens.Counter
	if cfg.QuizCfg.TokenEncoding != "" {
		c, err := tokens.NewCounter(cfg.QuizCfg.TokenEncoding)
		if err != nil {
			logger.Warn("token counting is disabled", zap.Error(err))
		} else {
			counter = c
		}
	}

	var generator *generation.Generator
	if counter != nil {
		generator = generation.NewGenerator(t.Model, counter)
	} else {
		generator = generation.NewGenerator(t.Model, nil)
	}

	// Initialize use cases
	t.Explainer = concept.NewExplainer(generator, translator, history)

	quizOpts := []quiz.Option{quiz.WithHistory(history)}
	if counter != nil && cfg.QuizCfg.MaxSourceTokens > 0 {
		quizOpts = append(quizOpts, quiz.WithSourceBudget(counter, cfg.QuizCfg.MaxSourceTokens))
	}
	t.Quiz = quiz.NewQuizGenerator(generator, pdftext.NewExtractor(), quizOpts...)

	t.Gate = access.NewGate(access.StaticCredentials{
		Username: cfg.AuthCfg.Username,
		Password: cfg.AuthCfg.Password,
	})

	t.Validator = validator.NewFileValidator(cfg.FileUploadCfg)

	if err := formatter.SetLicenseKey(cfg.ExportCfg.LicenseKey); err != nil {
		logger.Warn("failed to register unioffice license, docx export will fail", zap.Error(err))
	}
	t.Formats = formatter.NewFactory(cfg.ExportCfg.FontPath)

	logger.Info("Use cases initialized",
		zap.Bool("model_enabled", t.Model.Enabled()),
		zap.Bool("history_enabled", t.db != nil),
	)

	return t, nil
}

func newBackend(cfg config.LLMConfig, logger *zap.Logger) generation.Backend {
	switch cfg.Backend {
	case config.LLMBackendOllama:
		return llm.NewOllamaConnector(cfg, logger)
	default:
		return llm.NewOpenAIConnector(cfg, logger)
	}
}

// newTranslator returns nil when the provider cannot be set up; explanations in
// non-default languages then report a translation failure.
func newTranslator(ctx context.Context, cfg config.TranslateConfig, logger *zap.Logger) concept.Translator {
	switch cfg.Provider {
	case config.TranslateProviderLibre:
		return translation.NewLibreConnector(cfg, logger)
	default:
		google, err := translation.NewGoogleConnector(ctx, cfg, logger)
		if err != nil {
			logger.Warn("translation is unavailable", zap.Error(err))
			return nil
		}
		return google
	}
}
