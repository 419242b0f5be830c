package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DeepSeekBaseURL is the OpenAI-compatible endpoint DeepSeek exposes.
const DeepSeekBaseURL = "https://api.deepseek.com/v1"

// OpenAIClient talks to the OpenAI chat completion API. DeepSeek is the
// same wire protocol behind a different base URL, so the client serves
// both providers.
type OpenAIClient struct {
	client   *openai.Client
	provider string
}

// NewOpenAIClient creates a client for api.openai.com.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(cfg),
		provider: ProviderOpenAI,
	}
}

// NewDeepSeekClient creates a client for the DeepSeek endpoint.
func NewDeepSeekClient(apiKey string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DeepSeekBaseURL
	return &OpenAIClient{
		client:   openai.NewClientWithConfig(cfg),
		provider: ProviderDeepSeek,
	}
}

// Provider implements Client.
func (c *OpenAIClient) Provider() string { return c.provider }

// Chat implements Client.
func (c *OpenAIClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", c.classify(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: model %s", ErrEmptyResponse, req.Model)
	}
	return resp.Choices[0].Message.Content, nil
}

// classify wraps provider API errors with the matching sentinel.
func (c *OpenAIClient) classify(err error) error {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s request failed: %w", c.provider, err)
	}
	if isQuotaError(apiErr) {
		return fmt.Errorf("%w: %s", ErrQuotaExhausted, c.provider)
	}
	if sentinel := classifyStatus(apiErr.HTTPStatusCode); sentinel != nil {
		return fmt.Errorf("%w: %s (status %d): %s", sentinel, c.provider, apiErr.HTTPStatusCode, apiErr.Message)
	}
	return fmt.Errorf("%s request failed (status %d): %w", c.provider, apiErr.HTTPStatusCode, err)
}

// isQuotaError distinguishes billing exhaustion from ordinary rate
// limiting. OpenAI reports it as a 429 with code insufficient_quota.
func isQuotaError(apiErr *openai.APIError) bool {
	if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
		return true
	}
	return apiErr.HTTPStatusCode == 429 && strings.Contains(strings.ToLower(apiErr.Message), "quota")
}
