package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"clubsync/internal/metrics"
)

// TokenSource supplies the credential attached to authenticated requests.
// An empty string means no credential is available.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed credential. Useful in tests
// and one-shot tooling.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

// Client performs single HTTP requests against the club backend. It owns no
// state beyond its configuration: it never retries and never interprets
// response envelopes. Callers decode the raw body themselves.
type Client struct {
	BaseURL    string
	AuthHeader string
	HTTP       *http.Client

	creds TokenSource
}

// New creates a client with the given base URL and request timeout. header is
// the credential header name; the backend expects the raw token under
// "authToken" rather than a bearer scheme.
func New(baseURL, header string, timeout time.Duration, creds TokenSource) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    baseURL,
		AuthHeader: header,
		HTTP:       &http.Client{Timeout: timeout},
		creds:      creds,
	}
}

// Get issues an unauthenticated GET and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil, false)
}

// GetAuthed issues a GET with the credential header attached (/auth/me and
// friends).
func (c *Client) GetAuthed(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil, true)
}

// Post issues a JSON POST. authed controls whether the credential header is
// attached (student registration is the one public create).
func (c *Client) Post(ctx context.Context, path string, body any, authed bool) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body, authed)
}

// Put issues an authenticated JSON PUT.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body, true)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil, true)
}

func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authed && c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set(c.AuthHeader, token)
		}
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, 0, time.Since(start))
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s %s", ErrTimeout, method, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	metrics.ObserveRequest(method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{Status: resp.StatusCode, Message: serverMessage(data)}
	}
	return data, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// serverMessage extracts a human-readable message from an error body. The
// backend is inconsistent about the key it uses, so both are tried.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
