package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultAppEnv       = "development"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultTokenTTL     = "24h"
	defaultAdminUser    = "admin"
	keepAliveInterval   = 10 * time.Minute
	globalRateLimit     = 100
	contactRateLimit    = 5
	rateLimitWindowSpec = "15m"
)

// Config holds everything read from the environment at startup. It is
// loaded once and passed explicitly into constructors; nothing looks up
// credentials ambiently after boot.
type Config struct {
	Port   string
	AppEnv string

	DatabaseURL string
	RedisURL    string

	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string

	CORSAllowedOrigins []string

	WhatsAppNumber         string
	WhatsAppDefaultMessage string

	KeepAliveURL      string
	KeepAliveInterval time.Duration

	GlobalRateLimit  int
	ContactRateLimit int
	RateLimitWindow  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:                   getEnv("PORT", defaultPort),
		AppEnv:                 strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", defaultAppEnv))),
		DatabaseURL:            strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:               strings.TrimSpace(os.Getenv("REDIS_URL")),
		JWTSecret:              strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		AdminUsername:          strings.TrimSpace(getEnv("ADMIN_USERNAME", defaultAdminUser)),
		AdminPassword:          strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		WhatsAppNumber:         strings.TrimSpace(os.Getenv("WHATSAPP_NUMBER")),
		WhatsAppDefaultMessage: strings.TrimSpace(os.Getenv("WHATSAPP_DEFAULT_MSG")),
		KeepAliveURL:           strings.TrimSpace(os.Getenv("KEEPALIVE_URL")),
		KeepAliveInterval:      keepAliveInterval,
		GlobalRateLimit:        globalRateLimit,
		ContactRateLimit:       contactRateLimit,
	}

	var err error
	cfg.TokenTTL, err = parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}

	cfg.RateLimitWindow, err = parseDurationEnv("RATE_LIMIT_WINDOW", rateLimitWindowSpec)
	if err != nil {
		return nil, err
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the process runs in a prod-like environment
func (c *Config) IsProduction() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set")
	}
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be > 0")
	}
	if cfg.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be > 0")
	}

	if cfg.IsProduction() {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
