package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"clinic-invitations/internal/entities"

	"go.uber.org/zap"
)

// Transport delivers a single notification to the push backend.
type Transport interface {
	Deliver(ctx context.Context, n entities.Notification) error
}

// WebhookTransport POSTs notifications as JSON to the configured push endpoint.
type WebhookTransport struct {
	endpoint string
	client   *http.Client
}

// NewWebhookTransport builds a webhook transport for endpoint.
func NewWebhookTransport(endpoint string, timeout time.Duration) *WebhookTransport {
	return &WebhookTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Deliver sends the notification; any non-2xx response is an error.
func (t *WebhookTransport) Deliver(ctx context.Context, n entities.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// LogTransport records deliveries in the log only. Used when no push endpoint
// is configured.
type LogTransport struct {
	log *zap.SugaredLogger
}

// NewLogTransport builds a log-only transport.
func NewLogTransport(log *zap.SugaredLogger) *LogTransport {
	return &LogTransport{log: log.Named("notifier.log-transport")}
}

// Deliver logs the notification and always succeeds.
func (t *LogTransport) Deliver(_ context.Context, n entities.Notification) error {
	t.log.Infow("push notification",
		"event", n.Event,
		"event_id", n.EventID,
		"recipient_role", n.RecipientRole,
		"recipient_id", n.RecipientID,
		"invitation_id", n.InvitationID,
	)
	return nil
}
