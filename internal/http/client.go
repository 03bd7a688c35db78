// Package http implements the default transport for the Marvel gateway: a
// retrying GET client with conditional-request support backed by a response
// cache.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/excelsior-io/mapi-client/internal/constants"
	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

// Static errors for err113 compliance.
var errUnexpectedStatus = errors.New("unexpected response status")

const defaultUserAgent = "mapi-client/1.0"

// Client fetches signed gateway URLs over HTTP. It satisfies marvel.Fetcher.
//
// Retries are handled below the query engine: 5xx and 429 responses are
// retried with backoff, everything else surfaces immediately. When a cache is
// attached, responses carrying an Etag are replayed on 304 Not Modified, which
// still costs a request but not a full body against the daily quota.
type Client struct {
	retry     *retryablehttp.Client
	userAgent string
	logger    marvel.Logger
	debug     bool
	cache     marvel.Cache
	now       func() time.Time
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for debug output.
func WithLogger(logger marvel.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryConfig customizes retry behavior.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retry.RetryMax = maxRetries
		c.retry.RetryWaitMin = waitMin
		c.retry.RetryWaitMax = waitMax
	}
}

// WithCache attaches a response cache used for conditional requests.
func WithCache(cache marvel.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to install a
// custom transport or TLS configuration.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.retry.HTTPClient = httpClient
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retry.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a transport with default retry settings.
func NewClient(opts ...Option) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = constants.DefaultRetryMax
	retry.RetryWaitMin = constants.DefaultRetryWaitMin
	retry.RetryWaitMax = constants.DefaultRetryWaitMax
	retry.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retry.Logger = nil

	client := &Client{
		retry:     retry,
		userAgent: defaultUserAgent,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Fetch performs a GET against a fully signed URL and returns the raw body.
// Failures are returned as *marvel.TransportError.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &marvel.TransportError{URL: rawURL, Err: fmt.Errorf("building request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	cacheKey := CacheKey(rawURL)

	var cached *marvel.CacheEntry

	if c.cache != nil {
		entry, err := c.cache.Get(ctx, cacheKey)
		if err == nil && entry.ETag != "" {
			cached = entry

			req.Header.Set("If-None-Match", entry.ETag)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    cacheKey,
		})
	}

	start := c.now()

	resp, err := c.retry.Do(req)
	if err != nil {
		return nil, &marvel.TransportError{URL: rawURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &marvel.TransportError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"duration": c.now().Sub(start).String(),
			"bytes":    len(body),
		})
	}

	if resp.StatusCode == http.StatusNotModified && cached != nil {
		return cached.Body, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &marvel.TransportError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        decodeErrorBody(body, resp.StatusCode),
		}
	}

	if c.cache != nil {
		if etag := resp.Header.Get("Etag"); etag != "" {
			_ = c.cache.Set(ctx, cacheKey, &marvel.CacheEntry{
				ETag:     etag,
				Body:     body,
				StoredAt: c.now(),
			})
		}
	}

	return body, nil
}

// decodeErrorBody extracts the gateway's error payload from a non-2xx
// response. Bodies that are not a recognizable error shape fall back to the
// HTTP status.
func decodeErrorBody(body []byte, statusCode int) error {
	apiErr := &marvel.APIError{}
	if json.Unmarshal(body, apiErr) == nil && (apiErr.Code != "" || apiErr.Status != "") {
		return apiErr
	}

	return fmt.Errorf("%w: %d %s", errUnexpectedStatus, statusCode, http.StatusText(statusCode))
}

// CacheKey strips the per-request signature parameters from a signed URL so
// that repeat queries hit the same cache entry regardless of timestamp. The
// stripped form is also safe to log.
func CacheKey(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	values := parsed.Query()
	values.Del("apikey")
	values.Del("ts")
	values.Del("hash")
	parsed.RawQuery = values.Encode()

	return parsed.String()
}
