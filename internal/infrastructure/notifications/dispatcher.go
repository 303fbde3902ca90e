package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"moto_garage/internal/usecase/interfaces"
)

const defaultWebhookTimeout = 5 * time.Second

// NewDispatcherFromEnv picks the messaging backend:
//   - NOTIFY_WEBHOOK_URL set: POST each message to that URL (messaging
//     bridge, e.g. a WhatsApp gateway)
//   - otherwise: log-only dispatcher
func NewDispatcherFromEnv() interfaces.INotificationDispatcher {
	if url := os.Getenv("NOTIFY_WEBHOOK_URL"); url != "" {
		log.Printf("[notify][dispatcher] webhook dispatcher enabled url=%s", url)
		return NewWebhookDispatcher(url, defaultWebhookTimeout)
	}
	log.Printf("[notify][dispatcher] log dispatcher enabled")
	return NewLogDispatcher()
}

// LogDispatcher writes every message to the service log and reports it as
// delivered. Used in local and test environments.
type LogDispatcher struct{}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Notify(_ context.Context, recipientContact, templateID string, params map[string]string) (bool, error) {
	log.Printf("[notify][log] template=%s recipient=%s params=%v", templateID, recipientContact, params)
	return true, nil
}

// WebhookDispatcher forwards messages to an external messaging bridge over
// HTTP. The short client timeout keeps the one-way contract of
// INotificationDispatcher honest even when the bridge is down.
type WebhookDispatcher struct {
	url    string
	client *http.Client
}

var _ interfaces.INotificationDispatcher = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher(url string, timeout time.Duration) *WebhookDispatcher {
	return &WebhookDispatcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookMessage struct {
	Recipient  string            `json:"recipient"`
	TemplateID string            `json:"template_id"`
	Params     map[string]string `json:"params,omitempty"`
}

func (d *WebhookDispatcher) Notify(ctx context.Context, recipientContact, templateID string, params map[string]string) (bool, error) {
	body, err := json.Marshal(webhookMessage{
		Recipient:  recipientContact,
		TemplateID: templateID,
		Params:     params,
	})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("[notify][webhook] delivery failed template=%s err=%v", templateID, err)
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[notify][webhook] bridge rejected template=%s status=%d", templateID, resp.StatusCode)
		return false, fmt.Errorf("notification bridge returned status %d", resp.StatusCode)
	}
	return true, nil
}
