package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	SerpAPI  SerpAPI    `mapstructure:",squash"`
	Cache    Cache      `mapstructure:",squash"`
	LLM      LLM        `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// SerpAPI configures both the google_flights and google_hotels engines.
type SerpAPI struct {
	BaseURL      string        `mapstructure:"SERPAPI_BASE_URL"`
	APIKey       string        `mapstructure:"SERPAPI_API_KEY"`
	Timeout      time.Duration `mapstructure:"SERPAPI_TIMEOUT"`
	MaxRetries   int           `mapstructure:"SERPAPI_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"SERPAPI_RATE_LIMIT"`
	Currency     string        `mapstructure:"SERPAPI_CURRENCY"`
	Language     string        `mapstructure:"SERPAPI_LANGUAGE"`
	Country      string        `mapstructure:"SERPAPI_COUNTRY"`
}

type Cache struct {
	Expiration  time.Duration `mapstructure:"OFFER_CACHE_EXPIRATION"`
	LockTimeout time.Duration `mapstructure:"OFFER_LOCK_TIMEOUT"`
}

// LLM configures itinerary generation. An empty API key disables it.
type LLM struct {
	APIKey      string        `mapstructure:"GEMINI_API_KEY"`
	Model       string        `mapstructure:"GEMINI_MODEL"`
	Temperature float32       `mapstructure:"GEMINI_TEMPERATURE"`
	Timeout     time.Duration `mapstructure:"GEMINI_TIMEOUT"`
}

// Enabled reports whether an LLM key is configured.
func (l LLM) Enabled() bool {
	return l.APIKey != ""
}
