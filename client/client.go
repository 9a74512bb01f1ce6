/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/suparena/wpstore/config"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRetries   = 3
	defaultRetryBackoff = 500 * time.Millisecond
	defaultUserAgent    = "wpstore"
)

// Client reads the REST API of one site. It is used by one goroutine at a time.
type Client struct {
	baseURL      *url.URL
	authHeader   string
	userAgent    string
	http         *http.Client
	logger       *slog.Logger
	cache        *cache.Cache
	cacheFile    string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its transport is wrapped
// so requests to the site still carry auth and the user agent.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetry sets how often a transient failure is retried and the base of
// the linear backoff between attempts.
func WithRetry(maxRetries int, backoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryBackoff = backoff
	}
}

// WithCache enables the response cache. A non-empty file persists the cache
// across runs.
func WithCache(file string) Option {
	return func(c *Client) {
		c.cache = cache.New(cache.NoExpiration, 0)
		c.cacheFile = file
	}
}

// New creates a client for the site described by cfg.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c := &Client{
		baseURL:      base,
		authHeader:   cfg.AuthHeader(),
		userAgent:    defaultUserAgent,
		http:         &http.Client{Timeout: defaultTimeout},
		logger:       slog.Default(),
		maxRetries:   defaultMaxRetries,
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}

	next := c.http.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	wrapped := *c.http
	wrapped.Transport = &transport{client: c, next: next}
	if c.timeout > 0 {
		wrapped.Timeout = c.timeout
	}
	c.http = &wrapped

	if c.cache != nil && c.cacheFile != "" {
		if err := c.loadCache(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewFromOptions creates a client configured by the YAML options.
func NewFromOptions(cfg *config.Config, o config.Options, logger *slog.Logger) (*Client, error) {
	opts := []Option{
		WithLogger(logger),
		WithUserAgent(o.UserAgent),
		WithRetry(o.MaxRetries, o.RetryBackoff),
	}
	if o.Timeout > 0 {
		opts = append(opts, WithTimeout(o.Timeout))
	}
	if o.UseCache {
		opts = append(opts, WithCache(o.CacheFile))
	}
	return New(cfg, opts...)
}

// BaseURL returns the REST base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type transport struct {
	client *Client
	next   http.RoundTripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if t.client.userAgent != "" {
		req.Header.Set("User-Agent", t.client.userAgent)
	}
	if t.client.isSite(req.URL) {
		req.Header.Set("Authorization", t.client.authHeader)
	}
	return t.next.RoundTrip(req)
}

func (c *Client) isSite(u *url.URL) bool {
	return strings.EqualFold(u.Host, c.baseURL.Host)
}

// Response is one decoded-later API response.
type Response struct {
	Body       []byte `json:"body"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

// resolve turns a path relative to the base URL, or an absolute URL, into the
// request URL with params merged into its query.
func (c *Client) resolve(path string, params url.Values) (*url.URL, error) {
	var u *url.URL
	if strings.Contains(path, "://") {
		parsed, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("invalid url %q: %w", path, err)
		}
		u = parsed
	} else {
		rel, err := url.Parse(strings.Trim(path, "/"))
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", path, err)
		}
		u = c.baseURL.JoinPath(rel.Path)
		u.RawQuery = rel.RawQuery
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			q[k] = append([]string(nil), vs...)
		}
		u.RawQuery = q.Encode()
	}
	return u, nil
}

// Get fetches one resource. Paths are relative to the base URL; absolute URLs
// on another host are fetched without credentials and bypass the cache.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	u, err := c.resolve(path, params)
	if err != nil {
		return nil, err
	}
	key := u.String()
	cacheable := c.cache != nil && c.isSite(u)

	if cacheable {
		if x, found := c.cache.Get(key); found {
			c.logger.Debug("cache hit", "url", key)
			return x.(*Response), nil
		}
	}

	resp, err := c.getWithRetry(ctx, key)
	if err != nil {
		return nil, err
	}

	if cacheable {
		c.cache.Set(key, resp, cache.NoExpiration)
		if err := c.saveCache(); err != nil {
			c.logger.Warn("failed to persist request cache", "file", c.cacheFile, "error", err)
		}
	}
	return resp, nil
}

func (c *Client) getWithRetry(ctx context.Context, rawURL string) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := c.do(ctx, rawURL)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !isRetryable(ctx, err) {
			return nil, err
		}

		if attempt < c.maxRetries {
			backoff := time.Duration(attempt+1) * c.retryBackoff
			c.logger.Debug("retrying request", "url", rawURL, "attempt", attempt+1, "backoff", backoff, "error", err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return nil, fmt.Errorf("request failed after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("GET", "url", rawURL)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: rawURL, Body: truncate(body, 512)}
	}

	return &Response{
		Body:       body,
		Total:      headerInt(resp.Header, "X-WP-Total"),
		TotalPages: headerInt(resp.Header, "X-WP-TotalPages"),
	}, nil
}

func headerInt(h http.Header, name string) int {
	n, err := strconv.Atoi(h.Get(name))
	if err != nil {
		return 0
	}
	return n
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
