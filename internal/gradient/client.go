// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package gradient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devops-wiz/gradient-connect/internal/config"
	"github.com/devops-wiz/gradient-connect/internal/redact"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"
)

// maxBodyBytes bounds how much of a response body is read into memory.
const maxBodyBytes = 1 << 20

// ClientOptions configures a Client.
type ClientOptions struct {
	BaseURL        string
	Token          string
	TokenPlacement config.TokenPlacement
	UserAgent      string
	Timeout        time.Duration
	// Proxy routes every request through an HTTP(S) proxy when set.
	Proxy *url.URL
	// RequestID is sent as X-Request-Id. A random UUID is used when empty.
	RequestID string
	Logger    hclog.Logger
}

// Response is a fully read 2xx response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client performs single authenticated GET requests. It never retries on
// its own; retries belong to the caller.
type Client struct {
	http      *retryablehttp.Client
	base      *url.URL
	token     string
	placement config.TokenPlacement
	userAgent string
	timeout   time.Duration
	requestID string
	logger    hclog.Logger
}

// NewClient validates opts and builds the underlying HTTP client.
func NewClient(opts ClientOptions) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", redact.Secrets(opts.BaseURL))
	}
	if opts.Token == "" {
		return nil, fmt.Errorf("missing token")
	}
	if !opts.TokenPlacement.Valid() {
		return nil, fmt.Errorf("invalid token placement %q", opts.TokenPlacement)
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	requestID := opts.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &Client{
		http:      buildHTTPClient(opts, logger),
		base:      base,
		token:     opts.Token,
		placement: opts.TokenPlacement,
		userAgent: opts.UserAgent,
		timeout:   opts.Timeout,
		requestID: requestID,
		logger:    logger.Named("client"),
	}, nil
}

// buildHTTPClient constructs a single-attempt retryablehttp client over a
// non-pooled transport, so no connection is reused between attempts.
func buildHTTPClient(opts ClientOptions, logger hclog.Logger) *retryablehttp.Client {
	transport := cleanhttp.DefaultTransport()
	transport.Proxy = nil
	if opts.Proxy != nil {
		transport.Proxy = http.ProxyURL(opts.Proxy)
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: transport}
	rc.RetryMax = 0
	rc.CheckRetry = checkNoRetry
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = &redactingLogger{l: logger.Named("http"), secrets: []string{opts.Token}}
	return rc
}

// checkNoRetry surfaces context errors and otherwise hands every response
// back to the caller unchanged.
func checkNoRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return false, nil
}

// RequestID returns the X-Request-Id sent with every request.
func (c *Client) RequestID() string { return c.requestID }

// Get requests base URL + path. Any non-2xx status, timeout or connection
// failure is returned as a *TransportError.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	op := "GET " + path
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return nil, newTransportError(op, nil, nil, err, c.token)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", c.requestID)
	if c.placement.Header() {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.logger.Debug("sending request", "op", op, "headers", redact.Headers(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		if resp != nil {
			drainBody(resp.Body)
		}
		return nil, newTransportError(op, nil, nil, err, c.token)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, newTransportError(op, resp, nil, fmt.Errorf("read response body: %w", err), c.token)
	}
	c.logger.Debug("received response", "op", op, "status", resp.StatusCode, "bytes", len(body))
	if !IsSuccess(resp.StatusCode) {
		return nil, newTransportError(op, resp, body, nil, c.token)
	}
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

func (c *Client) endpoint(path string) string {
	u := c.base.JoinPath(path)
	if c.placement.Query() {
		q := u.Query()
		q.Set("token", c.token)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// withTimeout wraps ctx with a timeout when d > 0. If d <= 0, it returns the
// original context and a no-op cancel, allowing callers to `defer cancel()` unconditionally.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func drainBody(b io.ReadCloser) {
	defer b.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(b, 4096))
}

// IsSuccess reports whether the given HTTP status code is in 2xx range.
func IsSuccess(code int) bool {
	return code >= 200 && code <= 299
}
