package transport

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"resty.dev/v3"
)

// HTTPClient performs a single JSON HTTP exchange per call. It holds no
// per-request state and is safe for concurrent use.
type HTTPClient struct {
	client *resty.Client
}

// New creates an HTTP client that asks for JSON responses. Callers pass
// absolute URIs, so no base URL is configured here.
func New() *HTTPClient {
	return NewWithClient(resty.New())
}

// NewWithClient wraps an existing resty client, e.g. one with a custom
// timeout or TLS configuration.
func NewWithClient(client *resty.Client) *HTTPClient {
	client.SetHeader("Accept", "application/json")
	return &HTTPClient{client: client}
}

// Do issues method against uri with the given query parameters and decodes
// the JSON response body into out. A nil out discards the body.
func (c *HTTPClient) Do(ctx context.Context, method, uri string, query map[string]string, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Execute(method, uri)

	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return NewCanceledError(err)
		case errors.Is(err, context.DeadlineExceeded):
			return NewTimeoutError(err)
		}
		return NewNetworkError(err)
	}

	slog.Debug("simfin response",
		"method", method,
		"url", uri,
		"status_code", resp.StatusCode())

	if !resp.IsSuccess() {
		herr := ClassifyHTTPError(resp.StatusCode())
		herr.Body = resp.String()
		return herr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Bytes(), out); err != nil {
		return NewDecodeError(err)
	}
	return nil
}

// Get is a convenience wrapper around Do for GET requests.
func (c *HTTPClient) Get(ctx context.Context, uri string, query map[string]string, out any) error {
	return c.Do(ctx, http.MethodGet, uri, query, out)
}

// Close releases the underlying resty client resources.
func (c *HTTPClient) Close() error {
	return c.client.Close()
}
