package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// defaultMaxTokens caps Anthropic responses when the caller does not set
// a limit; the Messages API requires an explicit value.
const defaultMaxTokens = 4096

// AnthropicClient talks to the Anthropic Messages API.
type AnthropicClient struct {
	client anthropic.Client
}

// NewAnthropicClient creates a client with the given API key.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Provider implements Client.
func (c *AnthropicClient) Provider() string { return ProviderAnthropic }

// Chat implements Client.
func (c *AnthropicClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			// System entries inside the transcript are folded into user
			// turns; the real system prompt travels in params.System.
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", c.classify(err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: model %s", ErrEmptyResponse, req.Model)
	}
	return sb.String(), nil
}

// classify wraps provider API errors with the matching sentinel.
func (c *AnthropicClient) classify(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("anthropic request failed: %w", err)
	}
	if apiErr.StatusCode == 400 && strings.Contains(strings.ToLower(apiErr.Error()), "credit balance") {
		return fmt.Errorf("%w: anthropic", ErrQuotaExhausted)
	}
	if sentinel := classifyStatus(apiErr.StatusCode); sentinel != nil {
		return fmt.Errorf("%w: anthropic (status %d)", sentinel, apiErr.StatusCode)
	}
	return fmt.Errorf("anthropic request failed (status %d): %w", apiErr.StatusCode, err)
}
