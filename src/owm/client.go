package owm

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// DefaultTimeout is the default HTTP request timeout
const DefaultTimeout = 10 * time.Second

// maxBodySize bounds how much of a response is read
const maxBodySize = 1 << 20

// Client fetches current weather from OpenWeather
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	// Cache is optional; nil disables caching
	Cache *Cache
	// Logger receives debug lines; nil discards them
	Logger *log.Logger
}

// NewClient creates a client for baseURL with the given request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		BaseURL:   baseURL,
		UserAgent: "cityweather",
	}
}

// Current returns the report for q, consulting the cache first
func (c *Client) Current(ctx context.Context, q Query) (*Report, error) {
	key := q.CacheKey()
	if report, ok := c.Cache.Get(key); ok {
		c.debugf("cache hit for %q", key)
		return report, nil
	}

	report, err := c.Fetch(ctx, q.URL(c.BaseURL))
	if err != nil {
		return nil, err
	}

	c.Cache.Set(key, report)
	return report, nil
}

// Fetch performs a GET on queryURL and parses the body.
// Non-2xx statuses map to ErrUnauthorized, ErrCityNotFound or *StatusError.
func (c *Client) Fetch(ctx context.Context, queryURL string) (*Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.debugf("GET %s", RedactURL(queryURL))
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.debugf("%d in %s", resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorForStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return ParseReport(body)
}

func (c *Client) debugf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
