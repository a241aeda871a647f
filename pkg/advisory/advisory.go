package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// The provider is advisory only: it must never block ranking, so the client
// keeps a short timeout and callers swallow every failure.
const defaultTimeout = 3 * time.Second

// Request describes the chosen slot the provider should explain.
type Request struct {
	City     string `json:"city,omitempty"`
	Timezone string `json:"timezone"`
	Date     string `json:"date"`
	Goal     string `json:"goal"`
	Window   string `json:"window"`
	Slot     Slot   `json:"slot"`
}

// Slot is the name/time/label triple of the slot being explained.
type Slot struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Response is the provider's advisory text.
type Response struct {
	Why   string `json:"why"`
	Extra string `json:"extra,omitempty"`
}

// Client is the HTTP wrapper for the advisory-text provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new advisory client. timeout <= 0 falls back to the
// default short timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Explain asks the provider for a one-line rationale for the slot.
func (c *Client) Explain(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to marshal advisory request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build advisory request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("failed to call advisory API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return Response{}, fmt.Errorf("advisory API error %d: %s", resp.StatusCode, string(raw))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("failed to decode advisory response: %w", err)
	}
	if out.Why == "" {
		return Response{}, fmt.Errorf("advisory API returned empty why text")
	}
	return out, nil
}
