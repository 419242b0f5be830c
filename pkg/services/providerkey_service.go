package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/conclave-ai/conclave/ent"
	providerkeyent "github.com/conclave-ai/conclave/ent/providerkey"
	"github.com/conclave-ai/conclave/pkg/llm"
	"github.com/conclave-ai/conclave/pkg/secrets"
)

// ProviderKeyService stores per-provider API keys encrypted at rest and
// implements llm.KeySource with environment-variable fallback.
type ProviderKeyService struct {
	client    *ent.Client
	encryptor *secrets.Encryptor
	fallback  llm.StaticKeys
}

// NewProviderKeyService creates a new ProviderKeyService. fallback
// holds the keys loaded from the environment.
func NewProviderKeyService(client *ent.Client, encryptor *secrets.Encryptor, fallback llm.StaticKeys) *ProviderKeyService {
	return &ProviderKeyService{client: client, encryptor: encryptor, fallback: fallback}
}

// SetKey stores or replaces the key for a provider
func (s *ProviderKeyService) SetKey(ctx context.Context, provider, apiKey string) error {
	if provider == "" {
		return NewValidationError("provider", "required")
	}
	if apiKey == "" {
		return NewValidationError("api_key", "required")
	}

	encrypted, err := s.encryptor.Encrypt(apiKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt API key: %w", err)
	}

	existing, err := s.client.ProviderKey.Query().
		Where(providerkeyent.ProviderEQ(provider)).
		Only(ctx)
	switch {
	case err == nil:
		if err := existing.Update().SetKeyEncrypted(encrypted).Exec(ctx); err != nil {
			return fmt.Errorf("failed to update provider key: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		if err := s.client.ProviderKey.Create().
			SetID(uuid.New().String()).
			SetProvider(provider).
			SetKeyEncrypted(encrypted).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create provider key: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to query provider key: %w", err)
	}
}

// DeleteKey removes the stored key for a provider
func (s *ProviderKeyService) DeleteKey(ctx context.Context, provider string) error {
	n, err := s.client.ProviderKey.Delete().
		Where(providerkeyent.ProviderEQ(provider)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete provider key: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProviders returns the providers with a stored key
func (s *ProviderKeyService) ListProviders(ctx context.Context) ([]string, error) {
	found, err := s.client.ProviderKey.Query().
		Order(ent.Asc(providerkeyent.FieldProvider)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider keys: %w", err)
	}
	providers := make([]string, 0, len(found))
	for _, k := range found {
		providers = append(providers, k.Provider)
	}
	return providers, nil
}

// APIKey implements llm.KeySource: the stored key wins, the environment
// key is the fallback.
func (s *ProviderKeyService) APIKey(provider string) (string, error) {
	stored, err := s.client.ProviderKey.Query().
		Where(providerkeyent.ProviderEQ(provider)).
		Only(context.Background())
	if err == nil {
		key, err := s.encryptor.Decrypt(stored.KeyEncrypted)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt key for provider %q: %w", provider, err)
		}
		return key, nil
	}
	if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to query key for provider %q: %w", provider, err)
	}
	return s.fallback.APIKey(provider)
}
