package clients

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

// Client talks to the clinic backend REST API (JSON over HTTP). All state
// lives on the backend; the portal only ever goes through this client.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	// ErrBackendUnavailable wraps network-level failures and 5xx responses.
	ErrBackendUnavailable = errors.New("clinic backend unavailable")
	// ErrUnauthorized means the backend rejected the bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx backend response that is the caller's problem, e.g. a
// rejected payload. The backend's message is carried along untouched.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do performs one backend call. A non-empty token is sent as a bearer token.
// The response body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrBackendUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrBackendUnavailable, resp.StatusCode)
	default:
		return &APIError{Status: resp.StatusCode, Message: apiMessage(raw)}
	}
}

// apiMessage pulls a human-readable message out of a backend error body.
// DRF uses {"detail": "..."} for most errors and field maps for validation.
func apiMessage(raw []byte) string {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			if v, ok := body[key].(string); ok && v != "" {
				return v
			}
		}
		if len(body) > 0 {
			parts := make([]string, 0, len(body))
			for field, v := range body {
				parts = append(parts, fmt.Sprintf("%s: %v", field, v))
			}
			return strings.Join(parts, "; ")
		}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		msg = "request rejected"
	}
	return msg
}
