// Package api is the HTTP client for the WolfCafe backend. It only
// moves JSON (and one text/plain status body) back and forth; every
// business rule is enforced server-side.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized marks 401/403 responses. Callers drop the session or
// hide the action; the server remains the authority on access.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is any non-2xx response, with the body text the backend
// sent (the backend puts human-readable messages there).
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

// Client talks to one backend base URL. token returns the current
// bearer token, or "" when the viewer is a guest.
type Client struct {
	base  string
	http  *http.Client
	token func() string
}

func New(baseURL string, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		base:  baseURL,
		http:  &http.Client{Timeout: 15 * time.Second},
		token: token,
	}
}

// WithToken returns a client that authenticates with the given bearer
// token, sharing the underlying http.Client. Used to bind a chat's
// session to its backend calls.
func (c *Client) WithToken(tok string) *Client {
	return &Client{
		base:  c.base,
		http:  c.http,
		token: func() string { return tok },
	}
}

// do sends a JSON request and decodes a JSON response into out (out may
// be nil). in may be nil for bodyless methods.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	return c.doRaw(ctx, method, path, "application/json", body, out)
}

func (c *Client) doRaw(ctx context.Context, method, path, contentType string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}
