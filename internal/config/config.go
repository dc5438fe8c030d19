package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/edututor/internal/pkg/retry"
	"github.com/joho/godotenv"
)

const (
	LLMBackendOpenAI = "openai"
	LLMBackendOllama = "ollama"

	TranslateProviderGoogle = "google"
	TranslateProviderLibre  = "libre"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":7860"`
	// RequestTimeout of zero adds no deadline on top of the transports.
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"0s"`

	// Optional history database. History is disabled when empty.
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"1"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	LLMCfg       LLMConfig       `envPrefix:"LLM_"`
	TranslateCfg TranslateConfig `envPrefix:"TRANSLATE_"`

	// Access gate credentials
	AuthCfg AuthConfig `envPrefix:"AUTH_"`

	// Quiz configuration
	QuizCfg QuizConfig `envPrefix:"QUIZ_"`

	// Result export configuration
	ExportCfg ExportConfig `envPrefix:"EXPORT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Telegram bot configuration (optional)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// LLMConfig describes the text-generation backend the model handle is loaded from.
type LLMConfig struct {
	Backend      string `env:"BACKEND" envDefault:"openai"`
	Model        string `env:"MODEL" envDefault:"ibm-granite/granite-3.3-2b-instruct"`
	MaxNewTokens int    `env:"MAX_NEW_TOKENS" envDefault:"512"`
	BaseURL      string `env:"BASE_URL"`
	APIKey       string `env:"API_KEY"`
	// RequestTimeout bounds transport-level waiting only; zero leaves the
	// generation call unbounded.
	RequestTimeout time.Duration        `env:"TIMEOUT" envDefault:"0s"`
	ProbeRetry     pkgRetry.RetryConfig `envPrefix:"PROBE_RETRY_"`
}

type TranslateConfig struct {
	Provider string `env:"PROVIDER" envDefault:"google"`
	// Google Cloud Translation v2
	APIKey string `env:"API_KEY"`
	// LibreTranslate compatible endpoint
	HTTPClientConfig
	TranslateEndpoint string `env:"ENDPOINT" envDefault:"/translate"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// AuthConfig holds the single accepted credential pair of the access gate.
type AuthConfig struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD" envDefault:"1234"`
}

type QuizConfig struct {
	// MaxSourceTokens truncates extracted PDF text; 0 keeps it whole.
	MaxSourceTokens int `env:"MAX_SOURCE_TOKENS" envDefault:"0"`
	// TokenEncoding names the tiktoken encoding; empty disables token accounting.
	TokenEncoding string `env:"TOKEN_ENCODING" envDefault:"cl100k_base"`
}

type ExportConfig struct {
	// FontPath is a UTF-8 TTF font for PDF export (needed for Devanagari).
	FontPath string `env:"FONT_PATH"`
	// LicenseKey is the unioffice metered key required for DOCX export.
	LicenseKey string `env:"UNIDOC_LICENSE_API_KEY"`
}

// FileUploadConfig holds file upload limits
type FileUploadConfig struct {
	MaxFileSize   int64 `env:"MAX_FILE_SIZE" envDefault:"20971520"`   // 20 MiB
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"` // 32 MiB
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken        string        `env:"BOT_TOKEN"`
	UpdateTimeout   int           `env:"UPDATE_TIMEOUT" envDefault:"60"`
	ShutdownTimeout int           `env:"SHUTDOWN_TIMEOUT" envDefault:"30"` // seconds
	ChatStateTTL    time.Duration `env:"CHAT_STATE_TTL" envDefault:"24h"`
	MaxPDFSize      int64         `env:"MAX_PDF_SIZE" envDefault:"20971520"`
}

// Load reads configuration for the given environment name (local, prod or custom).
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	switch cfg.LLMCfg.Backend {
	case LLMBackendOpenAI, LLMBackendOllama:
	default:
		errors = append(errors, fmt.Sprintf("LLM_BACKEND must be one of %q, %q, got %q", LLMBackendOpenAI, LLMBackendOllama, cfg.LLMCfg.Backend))
	}

	if cfg.LLMCfg.MaxNewTokens < 1 || cfg.LLMCfg.MaxNewTokens > 32768 {
		errors = append(errors, fmt.Sprintf("LLM_MAX_NEW_TOKENS must be between 1 and 32768, got %d", cfg.LLMCfg.MaxNewTokens))
	}

	switch cfg.TranslateCfg.Provider {
	case TranslateProviderGoogle, TranslateProviderLibre:
	default:
		errors = append(errors, fmt.Sprintf("TRANSLATE_PROVIDER must be one of %q, %q, got %q", TranslateProviderGoogle, TranslateProviderLibre, cfg.TranslateCfg.Provider))
	}

	if cfg.QuizCfg.MaxSourceTokens < 0 {
		errors = append(errors, fmt.Sprintf("QUIZ_MAX_SOURCE_TOKENS must not be negative, got %d", cfg.QuizCfg.MaxSourceTokens))
	}

	if cfg.FileUploadCfg.MaxFileSize < 1 || cfg.FileUploadCfg.MaxFileSize > cfg.FileUploadCfg.MaxUploadSize {
		errors = append(errors, fmt.Sprintf("FILE_UPLOAD_MAX_FILE_SIZE must be between 1 and FILE_UPLOAD_MAX_UPLOAD_SIZE(%d), got %d", cfg.FileUploadCfg.MaxUploadSize, cfg.FileUploadCfg.MaxFileSize))
	}

	if cfg.DatabaseURL != "" {
		if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
			errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
		}

		if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
			errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
		}
	}

	if cfg.TelegramCfg.ShutdownTimeout < 1 || cfg.TelegramCfg.ShutdownTimeout > 300 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_SHUTDOWN_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.TelegramCfg.ShutdownTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
