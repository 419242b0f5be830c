package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webhookent "github.com/conclave-ai/conclave/ent/webhook"
	testdb "github.com/conclave-ai/conclave/test/database"
)

func TestWebhookService_CreateWebhook(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client, testEncryptor(t))
	ctx := context.Background()

	t.Run("registers target with encrypted secret", func(t *testing.T) {
		created, err := service.CreateWebhook(ctx, CreateWebhookRequest{
			URL:    "https://hooks.example.com/conclave",
			Events: []string{"meeting.completed"},
			Secret: "s3cret",
		})
		require.NoError(t, err)
		assert.True(t, created.Active)

		// The plaintext secret never reaches the database
		row, err := client.Webhook.Query().
			Where(webhookent.IDEQ(created.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, row.SecretEncrypted)
		assert.NotEqual(t, "s3cret", row.SecretEncrypted)
	})

	t.Run("validates URL", func(t *testing.T) {
		tests := []struct {
			name string
			url  string
		}{
			{"empty", ""},
			{"bad scheme", "ftp://example.com/hook"},
			{"not a url", "://"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateWebhook(ctx, CreateWebhookRequest{URL: tt.url})
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestWebhookService_ActiveTargets(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client, testEncryptor(t))
	ctx := context.Background()

	created, err := service.CreateWebhook(ctx, CreateWebhookRequest{
		URL:    "https://hooks.example.com/conclave",
		Events: []string{"meeting.completed", "meeting.failed"},
		Secret: "s3cret",
	})
	require.NoError(t, err)

	_, err = service.CreateWebhook(ctx, CreateWebhookRequest{
		URL: "https://hooks.example.com/open",
	})
	require.NoError(t, err)

	targets, err := service.ActiveTargets(ctx)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	// Secrets come back decrypted, ready for signing
	for _, target := range targets {
		if target.URL == "https://hooks.example.com/conclave" {
			assert.Equal(t, "s3cret", target.Secret)
			assert.Equal(t, []string{"meeting.completed", "meeting.failed"}, target.Events)
		} else {
			assert.Empty(t, target.Secret)
		}
	}

	t.Run("deleted webhook stops being a target", func(t *testing.T) {
		require.NoError(t, service.DeleteWebhook(ctx, created.ID))
		targets, err := service.ActiveTargets(ctx)
		require.NoError(t, err)
		assert.Len(t, targets, 1)
	})

	t.Run("unknown webhook", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteWebhook(ctx, "missing"), ErrNotFound)
	})
}
