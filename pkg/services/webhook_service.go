package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/conclave-ai/conclave/ent"
	webhookent "github.com/conclave-ai/conclave/ent/webhook"
	"github.com/conclave-ai/conclave/pkg/models"
	"github.com/conclave-ai/conclave/pkg/secrets"
	"github.com/conclave-ai/conclave/pkg/webhook"
)

// WebhookService manages webhook registrations. Shared secrets are
// encrypted at rest.
type WebhookService struct {
	client    *ent.Client
	encryptor *secrets.Encryptor
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(client *ent.Client, encryptor *secrets.Encryptor) *WebhookService {
	return &WebhookService{client: client, encryptor: encryptor}
}

// CreateWebhookRequest carries webhook registration input
type CreateWebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret"`
}

// CreateWebhook registers a new delivery target
func (s *WebhookService) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (models.Webhook, error) {
	if req.URL == "" {
		return models.Webhook{}, NewValidationError("url", "required")
	}
	parsed, err := url.Parse(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return models.Webhook{}, NewValidationError("url", "must be a valid http(s) URL")
	}

	encrypted := ""
	if req.Secret != "" {
		encrypted, err = s.encryptor.Encrypt(req.Secret)
		if err != nil {
			return models.Webhook{}, fmt.Errorf("failed to encrypt webhook secret: %w", err)
		}
	}

	created, err := s.client.Webhook.Create().
		SetID(uuid.New().String()).
		SetURL(req.URL).
		SetEvents(req.Events).
		SetActive(true).
		SetSecretEncrypted(encrypted).
		Save(ctx)
	if err != nil {
		return models.Webhook{}, fmt.Errorf("failed to create webhook: %w", err)
	}
	return toWebhook(created), nil
}

// ListWebhooks returns all registered webhooks
func (s *WebhookService) ListWebhooks(ctx context.Context) ([]models.Webhook, error) {
	found, err := s.client.Webhook.Query().
		Order(ent.Asc(webhookent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	webhooks := make([]models.Webhook, 0, len(found))
	for _, w := range found {
		webhooks = append(webhooks, toWebhook(w))
	}
	return webhooks, nil
}

// DeleteWebhook removes a registration
func (s *WebhookService) DeleteWebhook(ctx context.Context, webhookID string) error {
	if err := s.client.Webhook.DeleteOneID(webhookID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	return nil
}

// ActiveTargets returns the active delivery targets with decrypted
// secrets, ready for the dispatcher.
func (s *WebhookService) ActiveTargets(ctx context.Context) ([]webhook.Target, error) {
	found, err := s.client.Webhook.Query().
		Where(webhookent.ActiveEQ(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active webhooks: %w", err)
	}

	targets := make([]webhook.Target, 0, len(found))
	for _, w := range found {
		secret := ""
		if w.SecretEncrypted != "" {
			secret, err = s.encryptor.Decrypt(w.SecretEncrypted)
			if err != nil {
				return nil, fmt.Errorf("failed to decrypt secret for webhook %s: %w", w.ID, err)
			}
		}
		targets = append(targets, webhook.Target{
			URL:    w.URL,
			Events: w.Events,
			Secret: secret,
		})
	}
	return targets, nil
}

func toWebhook(e *ent.Webhook) models.Webhook {
	return models.Webhook{
		ID:        e.ID,
		URL:       e.URL,
		Events:    e.Events,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
	}
}
