package suntimes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is the HTTP wrapper for the sun-times provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new sun-times client. timeout <= 0 falls back to the
// default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves sunrise, sunset and next-sunrise instants for the given
// coordinates, civil date (YYYY-MM-DD) and IANA timezone.
//
// A provider 422 means no sunrise/sunset exists for that date/location and is
// returned as ErrUnavailable; any other non-2xx is a generic fetch failure.
func (c *Client) Fetch(ctx context.Context, lat, lon float64, dateISO, timezone string) (Times, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", lat))
	q.Set("lon", fmt.Sprintf("%.4f", lon))
	q.Set("date", dateISO)
	q.Set("tz", timezone)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Times{}, fmt.Errorf("failed to build sun times request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Times{}, fmt.Errorf("failed to call sun times API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var apiErr errorResponse
		if decErr := json.NewDecoder(resp.Body).Decode(&apiErr); decErr == nil && apiErr.Error != "" {
			return Times{}, fmt.Errorf("%w: %s", ErrUnavailable, apiErr.Error)
		}
		return Times{}, ErrUnavailable
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return Times{}, fmt.Errorf("sun times API error %d: %s", resp.StatusCode, string(raw))
	}

	var payload fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Times{}, fmt.Errorf("failed to decode sun times response: %w", err)
	}

	return Times{
		Sunrise:     payload.Sunrise,
		Sunset:      payload.Sunset,
		NextSunrise: payload.NextSunrise,
	}, nil
}
