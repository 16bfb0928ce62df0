package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the HTTP wrapper for the tea-field telemetry API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new telemetry client.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Snapshots fetches the latest telemetry snapshots, newest first.
// The metric list is fixed; the upstream returns only the requested fields.
func (c *Client) Snapshots(ctx context.Context) ([]Snapshot, error) {
	q := url.Values{}
	q.Set("fields", strings.Join(MetricFields, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/snapshots?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshots request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call sensor API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sensor API error %d: %s", resp.StatusCode, string(raw))
	}

	var body snapshotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode snapshots response: %w", err)
	}
	return body.Data, nil
}
