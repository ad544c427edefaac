package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NovuProvider triggers workflows through the Novu events API.
type NovuProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type novuOption func(*NovuProvider)

// WithHTTPClient overrides the default HTTP client; used by tests.
func WithHTTPClient(client *http.Client) novuOption {
	return func(p *NovuProvider) {
		p.httpClient = client
	}
}

func NewNovuProvider(apiKey, baseURL string, opts ...novuOption) *NovuProvider {
	if baseURL == "" {
		baseURL = "https://api.novu.co"
	}

	p := &NovuProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type triggerRequest struct {
	Name    string                 `json:"name"`
	To      To                     `json:"to"`
	Payload map[string]interface{} `json:"payload"`
}

func (p *NovuProvider) Trigger(ctx context.Context, event string, to To, payload map[string]interface{}) error {
	body, err := json.Marshal(triggerRequest{
		Name:    event,
		To:      to,
		Payload: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode trigger request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/events/trigger", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build trigger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to trigger %s: %w", event, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("trigger %s rejected with status %d: %s", event, resp.StatusCode, string(raw))
	}
	return nil
}
