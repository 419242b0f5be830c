package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderForModel(t *testing.T) {
	tests := []struct {
		model    string
		provider string
		wantErr  bool
	}{
		{model: "gpt-4o", provider: ProviderOpenAI},
		{model: "gpt-4o-mini", provider: ProviderOpenAI},
		{model: "o1-preview", provider: ProviderOpenAI},
		{model: "claude-sonnet-4-20250514", provider: ProviderAnthropic},
		{model: "deepseek-chat", provider: ProviderDeepSeek},
		{model: "llama-3", wantErr: true},
		{model: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			provider, err := ProviderForModel(tt.model)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownModel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.provider, provider)
		})
	}
}

func TestRetryable(t *testing.T) {
	wrap := func(sentinel error) error { return fmt.Errorf("openai (status x): %w", sentinel) }

	assert.True(t, Retryable(wrap(ErrRateLimited)))
	assert.True(t, Retryable(wrap(ErrServerError)))
	assert.False(t, Retryable(wrap(ErrAuth)))
	assert.False(t, Retryable(wrap(ErrQuotaExhausted)))
	assert.False(t, Retryable(wrap(ErrUnknownModel)))
	assert.False(t, Retryable(errors.New("plain failure")))
}

func TestClassifyStatus(t *testing.T) {
	assert.ErrorIs(t, classifyStatus(429), ErrRateLimited)
	assert.ErrorIs(t, classifyStatus(401), ErrAuth)
	assert.ErrorIs(t, classifyStatus(403), ErrAuth)
	assert.ErrorIs(t, classifyStatus(500), ErrServerError)
	assert.ErrorIs(t, classifyStatus(503), ErrServerError)
	assert.NoError(t, classifyStatus(400))
	assert.NoError(t, classifyStatus(200))
}

// fakeClient scripts a sequence of responses for retry tests.
type fakeClient struct {
	responses []fakeResponse
	calls     int
}

type fakeResponse struct {
	content string
	err     error
}

func (f *fakeClient) Provider() string { return "fake" }

func (f *fakeClient) Chat(_ context.Context, _ ChatRequest) (string, error) {
	if f.calls >= len(f.responses) {
		return "", errors.New("no scripted response")
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp.content, resp.err
}

func fastRetry(max int) RetryConfig {
	return RetryConfig{MaxRetries: max, InitialInterval: 1, MaxInterval: 1}
}

func TestWithRetry_RecoversFromRateLimit(t *testing.T) {
	fake := &fakeClient{responses: []fakeResponse{
		{err: fmt.Errorf("status 429: %w", ErrRateLimited)},
		{err: fmt.Errorf("status 503: %w", ErrServerError)},
		{content: "hello"},
	}}
	client := WithRetry(fake, fastRetry(3))

	content, err := client.Chat(context.Background(), ChatRequest{Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
	assert.Equal(t, 3, fake.calls)
}

func TestWithRetry_AuthFailsImmediately(t *testing.T) {
	fake := &fakeClient{responses: []fakeResponse{
		{err: fmt.Errorf("status 401: %w", ErrAuth)},
		{content: "should not be reached"},
	}}
	client := WithRetry(fake, fastRetry(3))

	_, err := client.Chat(context.Background(), ChatRequest{Model: "gpt-4o"})
	require.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, 1, fake.calls)
}

func TestWithRetry_QuotaFailsImmediately(t *testing.T) {
	fake := &fakeClient{responses: []fakeResponse{
		{err: fmt.Errorf("openai: %w", ErrQuotaExhausted)},
	}}
	client := WithRetry(fake, fastRetry(3))

	_, err := client.Chat(context.Background(), ChatRequest{Model: "gpt-4o"})
	require.ErrorIs(t, err, ErrQuotaExhausted)
	assert.Equal(t, 1, fake.calls)
}

func TestWithRetry_ExhaustsRetries(t *testing.T) {
	fake := &fakeClient{responses: []fakeResponse{
		{err: fmt.Errorf("status 429: %w", ErrRateLimited)},
		{err: fmt.Errorf("status 429: %w", ErrRateLimited)},
		{err: fmt.Errorf("status 429: %w", ErrRateLimited)},
	}}
	client := WithRetry(fake, fastRetry(2))

	_, err := client.Chat(context.Background(), ChatRequest{Model: "gpt-4o"})
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 3, fake.calls)
}

func TestRegistry_CachesClientsPerProvider(t *testing.T) {
	reg := NewRegistry(StaticKeys{
		ProviderOpenAI:   "sk-test",
		ProviderDeepSeek: "sk-deepseek",
	}, DefaultRetryConfig())

	a, err := reg.ClientForModel("gpt-4o")
	require.NoError(t, err)
	b, err := reg.ClientForModel("gpt-4o-mini")
	require.NoError(t, err)
	assert.Same(t, a, b)

	d, err := reg.ClientForModel("deepseek-chat")
	require.NoError(t, err)
	assert.Equal(t, ProviderDeepSeek, d.Provider())
}

func TestRegistry_MissingKey(t *testing.T) {
	reg := NewRegistry(StaticKeys{}, DefaultRetryConfig())

	_, err := reg.ClientForModel("claude-sonnet-4-20250514")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic")
}

func TestRegistry_UnknownModel(t *testing.T) {
	reg := NewRegistry(StaticKeys{}, DefaultRetryConfig())

	_, err := reg.ClientForModel("mystery-model")
	require.ErrorIs(t, err, ErrUnknownModel)
}
