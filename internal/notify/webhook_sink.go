package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// WebhookSink forwards alerts to an external push endpoint. A 401/403 from
// the endpoint means the device revoked notification permission and maps to
// ErrNoPermission.
type WebhookSink struct {
	url    string
	token  string
	client *http.Client
}

func NewWebhookSink(url, token string, client *http.Client) *WebhookSink {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WebhookSink{url: url, token: token, client: client}
}

type webhookPayload struct {
	UserID string `json:"user_id"`
	Key    string `json:"key"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (s *WebhookSink) Post(ctx context.Context, userID, key, title, body string) error {
	payload, err := json.Marshal(webhookPayload{UserID: userID, Key: key, Title: title, Body: body})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrNoPermission
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook post failed: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}
	return nil
}
