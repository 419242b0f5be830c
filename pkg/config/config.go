// Package config loads service configuration from the environment.
// Every option lives in an explicit record; nothing is read from the
// environment outside this package.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration record.
type Config struct {
	HTTPPort    string
	DatabaseURL string

	// RedisURL selects the broker-backed event bus when non-empty;
	// otherwise the in-process bus is used. Immutable after start.
	RedisURL string

	Auth             AuthConfig
	RateLimit        RateLimitConfig
	Runner           RunnerConfig
	Providers        ProviderKeys
	EncryptionSecret string

	CORSOrigins []string
	FrontendURL string
}

// AuthConfig holds JWT authentication settings.
type AuthConfig struct {
	Enabled            bool
	JWTSecret          string
	AccessTokenExpire  time.Duration
	RefreshTokenExpire time.Duration
}

// RateLimitConfig holds the request-rate buckets.
type RateLimitConfig struct {
	APIMaxRequests  int
	APIWindow       time.Duration
	LLMMaxRequests  int
	AuthMaxRequests int
}

// RunnerConfig bounds meeting execution.
type RunnerConfig struct {
	// LLMCallTimeout bounds a single provider call, including retries.
	LLMCallTimeout time.Duration
	// MeetingTimeout bounds one background run of a meeting.
	MeetingTimeout time.Duration
	// MaxRetries caps transient-error retries per LLM call.
	MaxRetries int
	// SubscriberQueueSize is the per-subscriber event queue capacity.
	SubscriberQueueSize int
	// ContextCharBudget caps the previous-meetings context injected at round 1.
	ContextCharBudget int
	// GracefulShutdownTimeout bounds worker drain on SIGTERM.
	GracefulShutdownTimeout time.Duration
}

// ProviderKeys holds environment fallback API keys, used when no key is
// registered in the database for the resolved provider.
type ProviderKeys struct {
	OpenAI    string
	Anthropic string
	DeepSeek  string
}

// Load reads the full configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		Auth: AuthConfig{
			Enabled:            getBool("AUTH_ENABLED", false),
			JWTSecret:          os.Getenv("JWT_SECRET"),
			AccessTokenExpire:  time.Duration(getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
			RefreshTokenExpire: time.Duration(getInt("REFRESH_TOKEN_EXPIRE_DAYS", 7)) * 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			APIMaxRequests:  getInt("RATE_LIMIT_API_MAX_REQUESTS", 120),
			APIWindow:       time.Duration(getInt("RATE_LIMIT_API_WINDOW_SECONDS", 60)) * time.Second,
			LLMMaxRequests:  getInt("RATE_LIMIT_LLM_MAX_REQUESTS", 10),
			AuthMaxRequests: getInt("RATE_LIMIT_AUTH_MAX_REQUESTS", 20),
		},
		Runner: RunnerConfig{
			LLMCallTimeout:          getDuration("LLM_CALL_TIMEOUT", 120*time.Second),
			MeetingTimeout:          getDuration("MEETING_TIMEOUT", 30*time.Minute),
			MaxRetries:              getInt("LLM_MAX_RETRIES", 3),
			SubscriberQueueSize:     getInt("EVENT_QUEUE_SIZE", 256),
			ContextCharBudget:       getInt("CONTEXT_CHAR_BUDGET", 3000),
			GracefulShutdownTimeout: getDuration("GRACEFUL_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Providers: ProviderKeys{
			OpenAI:    os.Getenv("OPENAI_API_KEY"),
			Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
			DeepSeek:  os.Getenv("DEEPSEEK_API_KEY"),
		},
		EncryptionSecret: os.Getenv("ENCRYPTION_SECRET"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "*")),
		FrontendURL:      os.Getenv("FRONTEND_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
