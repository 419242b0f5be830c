package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/conclave")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenExpire)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenExpire)
	assert.Equal(t, 120, cfg.RateLimit.APIMaxRequests)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.APIWindow)
	assert.Equal(t, 3, cfg.Runner.MaxRetries)
	assert.Equal(t, 256, cfg.Runner.SubscriberQueueSize)
	assert.Equal(t, 3000, cfg.Runner.ContextCharBudget)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_AuthRequiresSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/conclave")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/conclave")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("RATE_LIMIT_API_MAX_REQUESTS", "10")
	t.Setenv("LLM_CALL_TIMEOUT", "45s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenExpire)
	assert.Equal(t, 10, cfg.RateLimit.APIMaxRequests)
	assert.Equal(t, 45*time.Second, cfg.Runner.LLMCallTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
