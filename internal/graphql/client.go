// Package graphql is the content-fetch client for the WordPress GraphQL backend.
//
// Every call is a single POST of {query, variables}. There is no caching, no
// de-duplication of identical in-flight requests and no retry. GraphQL-level
// errors are returned to the caller inside the Response; only HTTP-level
// failures become Go errors.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client issues GraphQL requests against a fixed endpoint.
// It is safe for concurrent use and is read-only after construction.
type Client struct {
	endpoint   string
	httpClient *http.Client
	headers    http.Header
	metrics    *Metrics
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithHeader adds a static header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithMetrics records request outcomes and durations.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the logger used for transport failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		headers: http.Header{
			"Content-Type": []string{"application/json"},
			"Accept":       []string{"application/json"},
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type requestBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// Do sends query with variables and returns the decoded response body.
//
// A non-2xx status yields a *StatusError and no response. A response whose
// body carries an "errors" array is returned as-is with a nil error.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any) (*Response, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	payload, err := json.Marshal(requestBody{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create graphql request: %w", err)
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(outcomeTransport, start)
		c.logger.Error("GraphQL request failed", "endpoint", c.endpoint, "error", err)
		return nil, fmt.Errorf("graphql request to %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.observe(outcomeStatus, start)
		c.logger.Error("GraphQL endpoint returned an error status", "endpoint", c.endpoint, "status", resp.StatusCode)
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(outcomeTransport, start)
		c.logger.Error("Failed to read GraphQL response", "endpoint", c.endpoint, "error", err)
		return nil, fmt.Errorf("failed to read graphql response: %w", err)
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		c.observe(outcomeDecode, start)
		return nil, fmt.Errorf("failed to decode graphql response: %w", err)
	}
	out.Raw = body

	if out.HasErrors() {
		c.observe(outcomeGraphQLError, start)
	} else {
		c.observe(outcomeOK, start)
	}
	return &out, nil
}

func (c *Client) observe(outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Requests.WithLabelValues(outcome).Inc()
	c.metrics.Duration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}
