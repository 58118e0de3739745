// Package notification delivers push notifications through an HTTP push
// gateway. Delivery is best-effort: the caller logs failures and moves on,
// so the client keeps a short timeout to avoid stalling command handlers.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"waterdrop/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// PushClient sends notifications to a single device through the configured
// push gateway.
type PushClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewPushClient creates a push gateway client.
func NewPushClient(endpoint, apiKey string) (*PushClient, error) {
	if endpoint == "" {
		return nil, errs.NewValueIsRequiredError("endpoint")
	}

	return &PushClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: defaultTimeout},
	}, nil
}

type pushRequest struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Notify sends a notification to the device identified by token. An empty
// token is a no-op.
func (c *PushClient) Notify(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return nil
	}

	payload, err := json.Marshal(pushRequest{
		Token: token,
		Title: title,
		Body:  body,
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push gateway returned %d: %s", resp.StatusCode, detail)
	}

	return nil
}
