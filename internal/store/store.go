// Package store talks to the hosted keyed-record service that owns all
// persistent state. Every collection is reached over HTTP with a static
// project key; the server assigns a record key on creation.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound is returned when the store has no record under the given key.
// Callers can tell it apart from transport failures with errors.Is.
var ErrNotFound = errors.New("store: record not found")

// Client is a thin HTTP client for the record store. All typed access goes
// through Collection values bound to this client.
type Client struct {
	baseURL    string
	projectKey string
	http       *http.Client
}

func NewClient(baseURL, projectKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		projectKey: projectKey,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the client points at a real store. When it
// does not, the coordinator runs on demonstration data only.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.projectKey != ""
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("store: build request: %w", err)
	}
	req.Header.Set("X-API-Key", c.projectKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 300:
		return fmt.Errorf("store: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("store: decode response: %w", err)
		}
	}
	return nil
}
