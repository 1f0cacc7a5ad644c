package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/ministore/backend/internal/domain"
)

// Client fetches the catalog feed over HTTP. The feed is a static JSON
// document regenerated from a spreadsheet export, so the client is polite
// about polling and treats transient failures as retryable.
type Client struct {
	httpClient  *http.Client
	feedURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog feed client.
func NewClient(feedURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// The feed host is a plain file server; 1 req/sec with a small burst
	// is more than the storefront ever needs.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		feedURL:     feedURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait before the next retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// buildRequestURL appends a cache-busting version parameter so intermediate
// caches never serve a stale catalog.
func (c *Client) buildRequestURL() (string, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return "", fmt.Errorf("invalid feed URL: %w", err)
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "MiniStore/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}

	return resp, nil
}

// FetchCatalog downloads and decodes the full catalog feed. The whole
// catalog arrives in one shot; there is no server-side pagination. Retries
// up to 3 times on transient failures; a 404 is terminal (the feed file is
// simply not there).
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.RawRecord, string, error) {
	reqURL, err := c.buildRequestURL()
	if err != nil {
		return nil, "", err
	}

	if c.debug {
		log.Printf("[FEED] Fetching catalog from %s", reqURL)
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, "", fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[FEED] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[FEED] Feed error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			if resp.StatusCode == http.StatusNotFound {
				return nil, "", fmt.Errorf("%w: feed not found", domain.ErrFeedUnavailable)
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrFeedUnavailable, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		records, generatedAt, err := decodeFeed(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode feed: %w", err)
		}

		if c.debug {
			log.Printf("[FEED] Fetched %d records (generated_at=%q)", len(records), generatedAt)
		}
		return records, generatedAt, nil
	}

	log.Printf("[FEED] All retries failed for %s", c.feedURL)
	return nil, "", lastErr
}
