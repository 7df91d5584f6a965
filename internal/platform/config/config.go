package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment-driven configuration for the API.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Auth:
	// - AUTH_MODE=jwt (default): require a signing secret and enforce bearer auth
	// - AUTH_MODE=dev: bypass verification and trust X-Debug-Subject (local only)
	AuthMode   string `env:"AUTH_MODE" envDefault:"jwt"`
	DevSubject string `env:"DEV_SUBJECT" envDefault:""`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"travel-planner-api"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
	ClockSkew time.Duration `env:"JWT_CLOCK_SKEW" envDefault:"30s"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`
	DatabaseURL    string `env:"DATABASE_URL"`

	// Gateway credentials are optional on purpose: when absent, payment
	// attempts degrade to a clean "not configured" failure instead of a crash.
	StripeSecretKey      string        `env:"STRIPE_SECRET_KEY"`
	StripePublishableKey string        `env:"STRIPE_PUBLISHABLE_KEY"`
	StripeBaseURL        string        `env:"STRIPE_BASE_URL" envDefault:"https://api.stripe.com"`
	StripeTimeout        time.Duration `env:"STRIPE_TIMEOUT" envDefault:"30s"`
	PaymentReturnURL     string        `env:"PAYMENT_RETURN_URL"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.StripeSecretKey = strings.TrimSpace(cfg.StripeSecretKey)
	cfg.StripePublishableKey = strings.TrimSpace(cfg.StripePublishableKey)

	if cfg.AuthMode != "dev" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET (or set AUTH_MODE=dev)")
	}
	return cfg, nil
}
