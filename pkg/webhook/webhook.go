// Package webhook delivers meeting lifecycle events to registered HTTP
// endpoints. Payloads are signed with HMAC-SHA256 when the webhook has
// a shared secret.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// SignatureHeader carries the hex HMAC digest of the request body.
const SignatureHeader = "X-Hub-Signature-256"

const deliveryTimeout = 10 * time.Second

// Target is one webhook destination with its decrypted secret.
type Target struct {
	URL    string
	Events []string
	Secret string
}

// Dispatcher posts event payloads to matching targets. Delivery is
// best-effort: failures are logged, never propagated to the run.
type Dispatcher struct {
	client *http.Client
}

// NewDispatcher creates a dispatcher with a bounded HTTP client.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{client: &http.Client{Timeout: deliveryTimeout}}
}

// Dispatch sends the payload to every target subscribed to eventType.
func (d *Dispatcher) Dispatch(ctx context.Context, targets []Target, eventType string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal webhook payload", "event_type", eventType, "error", err)
		return
	}
	for _, target := range targets {
		if !subscribed(target, eventType) {
			continue
		}
		if err := d.deliver(ctx, target, body); err != nil {
			slog.Warn("Webhook delivery failed",
				"url", target.URL,
				"event_type", eventType,
				"error", err)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, target Target, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if target.Secret != "" {
		req.Header.Set(SignatureHeader, Sign(target.Secret, body))
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// Sign computes the signature header value for a body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a received signature in constant time.
func VerifySignature(secret string, body []byte, signature string) bool {
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}

func subscribed(target Target, eventType string) bool {
	if len(target.Events) == 0 {
		return true
	}
	for _, e := range target.Events {
		if e == eventType || e == "*" {
			return true
		}
	}
	return false
}
