package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/docpile/errkit/errors"
)

const defaultTimeout = 30 * time.Second

// Client is a thin JSON HTTP client. Transport failures and failure
// responses both surface as taxonomy errors; the zero configuration is
// usable as-is.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	logger     *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the base URL prefixed to request paths.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger enables debug logging of requests and their outcomes.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		headers:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes a request and returns the raw response. body, when non-nil,
// is JSON-encoded. A transport-level failure (the exchange never completed)
// is returned as an HTTP taxonomy error with no status; the caller is
// expected to hand a completed response to DecodeResponse.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.FromJSON(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.FromURL(err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		}
		return nil, errors.FromHTTP(0, err)
	}
	if c.logger != nil {
		c.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request completed")
	}
	return resp, nil
}
