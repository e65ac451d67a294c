// Package simfin is a client for the SimFin v1 REST API.
//
// Every method that talks to the API validates its arguments first and
// returns a *ValidationError without touching the network when they are
// malformed. Transport failures are returned exactly as the underlying
// HTTP collaborator reports them.
package simfin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cast"

	"simfinclient/transport"
)

const (
	// DefaultBaseURL is the production API root. Routes are appended to it verbatim.
	DefaultBaseURL = "https://simfin.com/api/v1/"

	// TokenParam is the query parameter carrying the access token.
	TokenParam = "api-key"
)

// Doer performs one HTTP exchange and decodes the JSON body into out.
//
// *transport.HTTPClient implements this interface.
type Doer interface {
	Do(ctx context.Context, method, uri string, query map[string]string, out any) error
}

// Params are query parameters. Values may be strings or numbers.
type Params map[string]any

// Request describes a single API call before it is sent.
type Request struct {
	Route  string
	Method string
	Query  Params
}

// Client is safe for concurrent use as long as SetBaseURL is not called
// while requests are in flight.
type Client struct {
	baseURL     string
	accessToken string
	transport   Doer
}

// New creates a client for the production API using the default transport.
func New(accessToken string) *Client {
	return NewWithTransport(accessToken, transport.New())
}

// NewWithTransport creates a client that sends requests through t.
func NewWithTransport(accessToken string, t Doer) *Client {
	return &Client{
		baseURL:     DefaultBaseURL,
		accessToken: accessToken,
		transport:   t,
	}
}

// SetBaseURL points the client at a different host, typically a test server.
func (c *Client) SetBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// BaseURL returns the URL routes are appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NewRequest builds the GET request for route. The access token is set
// first and params are merged over it, so a caller parameter named
// TokenParam replaces the token.
func (c *Client) NewRequest(route string, params Params) Request {
	query := Params{TokenParam: c.accessToken}
	for k, v := range params {
		query[k] = v
	}
	return Request{
		Route:  route,
		Method: http.MethodGet,
		Query:  query,
	}
}

// URI returns the absolute URI of req.
func (c *Client) URI(req Request) string {
	return c.baseURL + req.Route
}

// Get issues a GET for route with the access token and params and decodes
// the JSON response into out.
func (c *Client) Get(ctx context.Context, route string, params Params, out any) error {
	return c.Do(ctx, c.NewRequest(route, params), out)
}

// Do sends a prepared request.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	query := make(map[string]string, len(req.Query))
	for k, v := range req.Query {
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("query parameter %q: %w", k, err)
		}
		query[k] = s
	}

	slog.Debug("simfin request", "method", req.Method, "route", req.Route)

	return c.transport.Do(ctx, req.Method, c.URI(req), query, out)
}

// FinancialIndicators returns the static indicator catalog. No request is made.
func (c *Client) FinancialIndicators() map[string]string {
	return FinancialIndicators()
}

// StatementTypes returns the statement type codes. No request is made.
func (c *Client) StatementTypes() []string {
	return StatementTypes()
}

// PeriodTypes returns the reporting period codes. No request is made.
func (c *Client) PeriodTypes() []string {
	return PeriodTypes()
}
