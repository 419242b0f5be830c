package llm

import (
	"fmt"
	"sync"
)

// KeySource resolves the API key for a provider. The services layer
// implements it over stored provider keys with environment fallback.
type KeySource interface {
	APIKey(provider string) (string, error)
}

// StaticKeys is a KeySource backed by a fixed map, used for keys loaded
// from the environment.
type StaticKeys map[string]string

// APIKey implements KeySource.
func (s StaticKeys) APIKey(provider string) (string, error) {
	key, ok := s[provider]
	if !ok || key == "" {
		return "", fmt.Errorf("no API key configured for provider %q", provider)
	}
	return key, nil
}

// Registry resolves models to ready-to-use clients. Clients are built
// lazily per provider and cached; all carry the retry decorator.
type Registry struct {
	keys  KeySource
	retry RetryConfig

	mu      sync.Mutex
	clients map[string]Client
}

// NewRegistry creates a registry over the given key source.
func NewRegistry(keys KeySource, retry RetryConfig) *Registry {
	return &Registry{
		keys:    keys,
		retry:   retry,
		clients: make(map[string]Client),
	}
}

// ClientForModel returns the client serving the given model name.
func (r *Registry) ClientForModel(model string) (Client, error) {
	provider, err := ProviderForModel(model)
	if err != nil {
		return nil, err
	}
	return r.clientFor(provider)
}

func (r *Registry) clientFor(provider string) (Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if client, ok := r.clients[provider]; ok {
		return client, nil
	}

	key, err := r.keys.APIKey(provider)
	if err != nil {
		return nil, err
	}

	var client Client
	switch provider {
	case ProviderOpenAI:
		client = NewOpenAIClient(key)
	case ProviderAnthropic:
		client = NewAnthropicClient(key)
	case ProviderDeepSeek:
		client = NewDeepSeekClient(key)
	default:
		return nil, fmt.Errorf("%w: provider %q", ErrUnknownModel, provider)
	}

	client = WithRetry(client, r.retry)
	r.clients[provider] = client
	return client, nil
}
