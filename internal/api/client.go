// Package api wraps the carbon-credit platform's REST backend. Every
// operation is a thin call: the backend owns balances, the payment ledger
// and transfer validation; this package only shapes requests, attaches the
// bearer token and normalizes errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrSessionExpired is returned when the backend rejects the bearer token.
// The client's unauthorized hook has already run by the time callers see it.
var ErrSessionExpired = errors.New("Sessão expirada. Faça login novamente.")

// APIError is a non-2xx backend response with its server-supplied message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("erro na API (HTTP %d)", e.Status)
}

// TokenSource supplies the current bearer token, if any.
type TokenSource func() (string, bool)

// Client is the single HTTP client all service wrappers go through.
type Client struct {
	baseURL        string
	http           *http.Client
	token          TokenSource
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource injects the session token reader.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) { c.token = src }
}

// WithUnauthorizedHook registers the cross-cutting 401 handler (clear
// session, notify). The hook must be idempotent: concurrent calls may each
// observe a 401.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a client for the given backend host.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues a JSON request and decodes the JSON response into out (skipped
// when out is nil). body, when non-nil, is JSON-encoded.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	resp, err := c.send(ctx, method, path, query, reader, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// doRaw issues a request with an arbitrary body and returns the raw
// response bytes (profile images are binary).
func (c *Client) doRaw(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	resp, err := c.send(ctx, method, path, nil, body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return data, nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != nil {
		if tok, ok := c.token(); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chamando API: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body),
		}
	}
	return resp, nil
}

// readErrorMessage extracts the backend's error text. The backend answers
// either {"mensagem": "..."} or a plain string body.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var envelope struct {
		Mensagem string `json:"mensagem"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Mensagem != "" {
		return envelope.Mensagem
	}

	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		return plain
	}
	return strings.TrimSpace(string(data))
}
