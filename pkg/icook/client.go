package icook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Client is the HTTP wrapper for the iCook catalog API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Config holds client construction options.
type Config struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	RequestsPerSec float64
}

// NewClient creates a new iCook catalog client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1)
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

// HotKeywords fetches the trending search keywords.
func (c *Client) HotKeywords(ctx context.Context) ([]string, error) {
	var resp hotKeywordsResponse
	if err := c.get(ctx, "/api/v1/keywords/hot_keywords", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch hot keywords: %w", err)
	}
	return resp.Keywords, nil
}

// Search performs a keyword search over recipes.
func (c *Client) Search(ctx context.Context, keyword string) (*SearchResult, error) {
	path := fmt.Sprintf("/api/v1/recipes/search.json?q=%s", url.QueryEscape(keyword))

	var result SearchResult
	if err := c.get(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to search recipes for %q: %w", keyword, err)
	}
	return &result, nil
}

// Seasonal fetches the seasonal-ingredients block of the homepage feed.
func (c *Client) Seasonal(ctx context.Context) (*SeasonalStory, error) {
	var feed homepageResponse
	if err := c.get(ctx, "/api/v1/homepage_v2.json", &feed); err != nil {
		return nil, fmt.Errorf("failed to fetch homepage feed: %w", err)
	}

	if len(feed.Stories) <= seasonStoryIndex {
		return nil, fmt.Errorf("homepage feed has %d stories, seasonal block missing", len(feed.Stories))
	}
	story := feed.Stories[seasonStoryIndex]
	return &story, nil
}

// Recipe fetches one recipe with full detail by its identifier.
func (c *Client) Recipe(ctx context.Context, id string) (*RecipeDetail, error) {
	var detail RecipeDetail
	if err := c.get(ctx, fmt.Sprintf("/api/v1/recipes/%s.json", url.PathEscape(id)), &detail); err != nil {
		return nil, fmt.Errorf("failed to fetch recipe %s: %w", id, err)
	}
	return &detail, nil
}

// seasonStoryIndex is the position of the seasonal-ingredients story within the
// homepage feed; the feed layout is fixed on the upstream side.
const seasonStoryIndex = 8

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call catalog API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("catalog API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}
