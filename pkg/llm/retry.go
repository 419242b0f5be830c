package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig controls the retry decorator.
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig matches the runner defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     10 * time.Second,
	}
}

// retryClient wraps a Client with exponential backoff on transient
// failures. Rate limits and 5xx responses are retried; auth and quota
// failures abort immediately.
type retryClient struct {
	inner Client
	cfg   RetryConfig
}

// WithRetry decorates a client with retry behavior.
func WithRetry(inner Client, cfg RetryConfig) Client {
	if cfg.MaxRetries <= 0 {
		cfg = DefaultRetryConfig()
	}
	return &retryClient{inner: inner, cfg: cfg}
}

// Provider implements Client.
func (c *retryClient) Provider() string { return c.inner.Provider() }

// Chat implements Client.
func (c *retryClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.InitialInterval
	bo.MaxInterval = c.cfg.MaxInterval

	var attempt int
	operation := func() (string, error) {
		attempt++
		content, err := c.inner.Chat(ctx, req)
		if err == nil {
			return content, nil
		}
		if !Retryable(err) {
			return "", backoff.Permanent(err)
		}
		slog.Warn("LLM call failed, retrying",
			"provider", c.inner.Provider(),
			"model", req.Model,
			"attempt", attempt,
			"error", err)
		return "", err
	}

	content, err := backoff.RetryWithData(operation, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(c.cfg.MaxRetries)), ctx))
	if err != nil {
		return "", fmt.Errorf("chat completion failed after %d attempt(s): %w", attempt, err)
	}
	return content, nil
}
