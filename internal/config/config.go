package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"BACKEND_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	InstanceName    string        `env:"INSTANCE_NAME" envDefault:"ultranova-1"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	Database  DatabaseConfig
	Auth      AuthConfig
	Chat      ChatConfig
	LLM       LLMConfig
	Email     EmailConfig
	RateLimit RateLimitConfig

	// DigestSchedule is a cron spec; empty disables the waitlist digest.
	DigestSchedule string `env:"DIGEST_SCHEDULE" envDefault:"@daily"`
}

type DatabaseConfig struct {
	Host          string `env:"POSTGRES_CONTAINER_NAME" envDefault:"localhost"`
	Port          int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User          string `env:"POSTGRES_USER" envDefault:"ultranova"`
	Password      string `env:"POSTGRES_PASSWORD"`
	Name          string `env:"POSTGRES_DB" envDefault:"ultranova"`
	SSLMode       string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
}

// DSN returns the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}

type ChatConfig struct {
	InitialDelay  time.Duration `env:"CHAT_INITIAL_DELAY" envDefault:"600ms"`
	ChunkDelay    time.Duration `env:"CHAT_CHUNK_DELAY" envDefault:"35ms"`
	KnowledgePath string        `env:"CHAT_KNOWLEDGE_PATH"`
}

// LLMConfig is optional; founder chat falls back to canned answers without it.
type LLMConfig struct {
	BaseURL string `env:"OPENAI_BASE_URL"`
	APIKey  string `env:"OPENAI_KEY"`
	Model   string `env:"OPENAI_MODEL"`
	// MaxTokens of 0 leaves the provider default.
	MaxTokens int `env:"OPENAI_MAX_TOKENS" envDefault:"300"`
}

func (c LLMConfig) Enabled() bool {
	return c.BaseURL != "" && c.APIKey != "" && c.Model != ""
}

type EmailConfig struct {
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"hello@ultranova.ai"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"UltraNova"`
}

func (c EmailConfig) IsConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}

type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is not set")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Chat.InitialDelay < 0 || c.Chat.ChunkDelay < 0 {
		return errors.New("chat delays must not be negative")
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate limit values must be positive")
	}
	return nil
}
