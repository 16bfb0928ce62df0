package market

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP wrapper for the market order-lookup API.
// Requests are authenticated by an HMAC-SHA1 signature over the raw JSON body,
// carried in the x-hub-signature header.
type Client struct {
	url        string
	signingKey string
	httpClient *http.Client
}

// NewClient creates a new market client.
func NewClient(url, signingKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		url:        url,
		signingKey: signingKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Orders looks up orders by the purchaser's mobile number and LINE user ID.
func (c *Client) Orders(ctx context.Context, phone, lineUserID string) (*OrdersResponse, error) {
	body, err := json.Marshal(ordersRequest{
		PurchaserMobile: phone,
		LineUserID:      lineUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal orders request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build orders request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("x-hub-signature", fmt.Sprintf("sha1=%s", c.sign(body)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call market API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("market API error %d: %s", resp.StatusCode, string(raw))
	}

	var orders OrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders response: %w", err)
	}
	return &orders, nil
}

// sign computes the hex HMAC-SHA1 of the payload with the shared key.
func (c *Client) sign(payload []byte) string {
	mac := hmac.New(sha1.New, []byte(c.signingKey))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
