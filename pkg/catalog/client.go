package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/stylewheel/pkg/httputil"
	"github.com/matzehuels/stylewheel/pkg/observability"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the catalog endpoint answers 404.
	ErrNotFound = errors.New("catalog not found")

	// ErrNetwork is returned for transport failures and unexpected statuses.
	ErrNetwork = errors.New("network error")
)

// Client performs catalog HTTP requests with caching and retries.
type Client struct {
	http    *http.Client
	cache   *httputil.Cache
	headers map[string]string
	retry   func(ctx context.Context, fn func() error) error
}

// NewClient creates a client. cache may be nil to disable caching.
func NewClient(cache *httputil.Cache, headers map[string]string) *Client {
	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   cache,
		headers: headers,
		retry:   httputil.RetryWithBackoff,
	}
}

// WithRetry replaces the default retry policy (3 attempts from 1s).
func (c *Client) WithRetry(attempts int, delay time.Duration) *Client {
	c.retry = func(ctx context.Context, fn func() error) error {
		return httputil.Retry(ctx, attempts, delay, fn)
	}
	return c
}

// Cached returns the cached value for key when present, otherwise runs fetch
// with retries and caches what it populated into v.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	if c.cache != nil && !refresh {
		if ok, _ := c.cache.Get(key, v); ok {
			observability.Catalog().OnCacheHit(ctx, key)
			return nil
		}
		observability.Catalog().OnCacheMiss(ctx, key)
	}
	if err := c.retry(ctx, fetch); err != nil {
		return err
	}
	if c.cache != nil {
		_ = c.cache.Set(key, v)
	}
	return nil
}

// GetJSON performs a GET and decodes the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, val := range c.headers {
		req.Header.Set(k, val)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return httputil.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return httputil.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// HTTPSource fetches the catalog from a remote endpoint such as
// http://host/api/styles.
type HTTPSource struct {
	URL     string
	Client  *Client
	Refresh bool // bypass the response cache
}

// Fetch downloads the catalog document.
func (s *HTTPSource) Fetch(ctx context.Context) (Catalog, error) {
	client := s.Client
	if client == nil {
		client = NewClient(nil, nil)
	}
	var c Catalog
	err := client.Cached(ctx, "styles:"+s.URL, s.Refresh, &c, func() error {
		return client.GetJSON(ctx, s.URL, &c)
	})
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = Catalog{}
	}
	return c, nil
}

func (s *HTTPSource) String() string { return s.URL }
