// Package llm abstracts chat-completion providers behind one Client
// interface. Providers are resolved from the model name prefix, and
// transient failures are classified into sentinel errors so callers can
// decide retry behavior with errors.Is.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider identifiers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderDeepSeek  = "deepseek"
)

// QuotaExhaustedMessage is surfaced to users when a provider reports a
// billing quota failure. Retrying cannot help, so runs fail immediately.
const QuotaExhaustedMessage = "API quota exhausted. Please check your API key billing or switch provider."

// Sentinel errors for provider failure classification.
var (
	// ErrRateLimited marks HTTP 429 responses that are not quota failures.
	ErrRateLimited = errors.New("rate limited by provider")
	// ErrAuth marks HTTP 401/403 responses. Never retried.
	ErrAuth = errors.New("provider authentication failed")
	// ErrQuotaExhausted marks billing quota failures. Never retried.
	ErrQuotaExhausted = errors.New(QuotaExhaustedMessage)
	// ErrServerError marks HTTP 5xx responses.
	ErrServerError = errors.New("provider server error")
	// ErrUnknownModel marks model names with no matching provider.
	ErrUnknownModel = errors.New("unknown model")
	// ErrEmptyResponse marks completions with no content.
	ErrEmptyResponse = errors.New("provider returned empty response")
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a chat transcript.
type Message struct {
	Role    string
	Content string
}

// ChatRequest is a single completion request.
type ChatRequest struct {
	Model       string
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Client performs one chat completion against a provider.
type Client interface {
	// Chat returns the assistant text for the request.
	Chat(ctx context.Context, req ChatRequest) (string, error)
	// Provider returns the provider identifier for logging and events.
	Provider() string
}

// ProviderForModel maps a model name to its provider by prefix.
func ProviderForModel(model string) (string, error) {
	switch {
	case strings.HasPrefix(model, "gpt-") || strings.HasPrefix(model, "o1"):
		return ProviderOpenAI, nil
	case strings.HasPrefix(model, "claude-"):
		return ProviderAnthropic, nil
	case strings.HasPrefix(model, "deepseek-"):
		return ProviderDeepSeek, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
}

// Retryable reports whether the classified error is worth retrying.
// Auth and quota failures are terminal.
func Retryable(err error) bool {
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrQuotaExhausted) || errors.Is(err, ErrUnknownModel) {
		return false
	}
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServerError)
}

// classifyStatus maps an HTTP status code to a sentinel error, or nil
// when the status carries no retry semantics.
func classifyStatus(status int) error {
	switch {
	case status == 429:
		return ErrRateLimited
	case status == 401 || status == 403:
		return ErrAuth
	case status >= 500:
		return ErrServerError
	default:
		return nil
	}
}
