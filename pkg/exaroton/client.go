// Package exaroton is a typed client for the exaroton Minecraft hosting API.
//
// A Client is constructed from an API token and mirrors every REST endpoint
// of the service: account info, server lifecycle, server options, player
// lists, file access and credit pools. Each method issues a single HTTP
// request and decodes the common {success, error, data} response envelope.
package exaroton

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.exaroton.com/v1/"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "exaroton-go/" + Version
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.4.0"

// Client talks to the exaroton API. All methods are safe for concurrent use;
// the client holds no mutable state beyond its configuration.
type Client struct {
	baseURL    *url.URL
	token      string
	userAgent  string
	httpClient *http.Client

	// optErr holds the first configuration error seen while applying
	// options; NewClient returns it instead of a half-configured client.
	optErr error
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. A trailing slash is appended if
// missing so relative endpoint paths resolve underneath it.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			if c.optErr == nil {
				c.optErr = fmt.Errorf("exaroton: invalid base URL %q: %w", raw, err)
			}
			return
		}
		c.baseURL = u
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a client authenticating with the given API token.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("exaroton: API token must not be empty")
	}

	base, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		baseURL:   base,
		token:     token,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.optErr != nil {
		return nil, c.optErr
	}
	if c.baseURL == nil {
		return nil, fmt.Errorf("exaroton: invalid base URL")
	}

	return c, nil
}

// envelope is the common response wrapper returned by every JSON endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodDelete, path, body, out)
}

// do issues one JSON request and decodes the response envelope into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("exaroton: encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("exaroton: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("exaroton: read response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("exaroton: decode response: %w", err)
	}

	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, env.Error)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("exaroton: decode response data: %w", err)
		}
	}

	return nil
}

// doRaw issues a request whose successful response body is raw bytes rather
// than a JSON envelope (the file data endpoints). Error responses still carry
// an envelope, detected via Content-Type.
func (c *Client) doRaw(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/octet-stream")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exaroton: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("exaroton: read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
			var env envelope
			if err := json.Unmarshal(data, &env); err == nil {
				return nil, newAPIError(resp.StatusCode, env.Error)
			}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	return data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("exaroton: invalid endpoint path %q: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.ResolveReference(ref).String(), body)
	if err != nil {
		return nil, fmt.Errorf("exaroton: create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}
