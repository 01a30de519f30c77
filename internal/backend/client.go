// Package backend implements a typed HTTP client for the hosted
// collection backend.
//
// The backend exposes CRUD over named collections ("users", "items",
// "prices") plus password authentication and password-reset endpoints.
// All responses are decoded into the types in internal/models and
// validated at the boundary; payload shape is never trusted implicitly.
//
// Nothing here retries: every failure is terminal for the triggering
// request and surfaces to the caller.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chandra447/item-tracker/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Client talks to one collection backend. It is safe for concurrent use.
// Construct it once at the composition root and inject it; per-session
// authentication comes from WithToken.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client bound to the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// WithToken returns a copy of the client that sends the given session
// token on every request. The zero token means unauthenticated.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListOptions carries the optional filter and sort expressions understood
// by the backend's list endpoint.
type ListOptions struct {
	Filter string
	Sort   string
}

// send issues one request and decodes a 2xx JSON response into out (when
// out is non-nil). Non-2xx responses decode into *APIError with the raw
// payload retained for diagnostics.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any, collection, op string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.BackendRequests.WithLabelValues(collection, op, "error").Inc()
		return fmt.Errorf("backend %s %s: %w", op, collection, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequests.WithLabelValues(collection, op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", op, collection, err)
	}
	return nil
}

func collectionPath(collection string) string {
	return "/api/collections/" + url.PathEscape(collection) + "/records"
}
