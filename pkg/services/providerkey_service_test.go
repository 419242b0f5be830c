package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	providerkeyent "github.com/conclave-ai/conclave/ent/providerkey"
	"github.com/conclave-ai/conclave/pkg/llm"
	testdb "github.com/conclave-ai/conclave/test/database"
)

func TestProviderKeyService_SetKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProviderKeyService(client.Client, testEncryptor(t), nil)
	ctx := context.Background()

	t.Run("stores key encrypted at rest", func(t *testing.T) {
		require.NoError(t, service.SetKey(ctx, llm.ProviderOpenAI, "sk-stored"))

		row, err := client.ProviderKey.Query().
			Where(providerkeyent.ProviderEQ(llm.ProviderOpenAI)).
			Only(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "sk-stored", row.KeyEncrypted)

		key, err := service.APIKey(llm.ProviderOpenAI)
		require.NoError(t, err)
		assert.Equal(t, "sk-stored", key)
	})

	t.Run("replaces an existing key", func(t *testing.T) {
		require.NoError(t, service.SetKey(ctx, llm.ProviderOpenAI, "sk-rotated"))

		key, err := service.APIKey(llm.ProviderOpenAI)
		require.NoError(t, err)
		assert.Equal(t, "sk-rotated", key)

		providers, err := service.ListProviders(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{llm.ProviderOpenAI}, providers)
	})

	t.Run("validates input", func(t *testing.T) {
		assert.True(t, IsValidationError(service.SetKey(ctx, "", "sk-x")))
		assert.True(t, IsValidationError(service.SetKey(ctx, llm.ProviderOpenAI, "")))
	})
}

func TestProviderKeyService_Fallback(t *testing.T) {
	client := testdb.NewTestClient(t)
	fallback := llm.StaticKeys{llm.ProviderAnthropic: "sk-from-env"}
	service := NewProviderKeyService(client.Client, testEncryptor(t), fallback)
	ctx := context.Background()

	t.Run("environment key serves when nothing is stored", func(t *testing.T) {
		key, err := service.APIKey(llm.ProviderAnthropic)
		require.NoError(t, err)
		assert.Equal(t, "sk-from-env", key)
	})

	t.Run("stored key wins over environment", func(t *testing.T) {
		require.NoError(t, service.SetKey(ctx, llm.ProviderAnthropic, "sk-stored"))
		key, err := service.APIKey(llm.ProviderAnthropic)
		require.NoError(t, err)
		assert.Equal(t, "sk-stored", key)
	})

	t.Run("delete falls back to environment", func(t *testing.T) {
		require.NoError(t, service.DeleteKey(ctx, llm.ProviderAnthropic))
		key, err := service.APIKey(llm.ProviderAnthropic)
		require.NoError(t, err)
		assert.Equal(t, "sk-from-env", key)
	})

	t.Run("no key anywhere", func(t *testing.T) {
		_, err := service.APIKey(llm.ProviderDeepSeek)
		assert.Error(t, err)
	})

	t.Run("delete without stored key", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteKey(ctx, llm.ProviderDeepSeek), ErrNotFound)
	})
}

func TestProviderKeyService_ListProviders(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProviderKeyService(client.Client, testEncryptor(t), nil)
	ctx := context.Background()

	require.NoError(t, service.SetKey(ctx, llm.ProviderOpenAI, "sk-1"))
	require.NoError(t, service.SetKey(ctx, llm.ProviderAnthropic, "sk-2"))

	providers, err := service.ListProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{llm.ProviderAnthropic, llm.ProviderOpenAI}, providers)
}
