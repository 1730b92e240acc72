// Package diagnostics runs every named query against the backend and reports
// what came back. It backs the /test-working page and `sitectl check`.
package diagnostics

import (
	"context"
	"time"

	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/graphql"
	"github.com/nfrund/sitefront/internal/queries"
)

// Check is the outcome of one query.
type Check struct {
	Name        string
	Duration    time.Duration
	HasData     bool
	Errors      []graphql.Error
	Suggestions []graphql.Suggestion
	// Err is set for HTTP-level failures.
	Err error
}

// OK reports whether the query returned data without any errors.
func (c Check) OK() bool {
	return c.Err == nil && len(c.Errors) == 0 && c.HasData
}

// Run executes each query in turn.
func Run(ctx context.Context, fetcher content.Fetcher, named []queries.Named) []Check {
	out := make([]Check, 0, len(named))
	for _, q := range named {
		start := time.Now()
		resp, err := fetcher.Do(ctx, q.Query, q.Variables)
		c := Check{Name: q.Name, Duration: time.Since(start), Err: err}
		if err == nil {
			c.HasData = resp.HasData()
			c.Errors = resp.Errors
			c.Suggestions = graphql.Suggestions(resp.Errors)
		}
		out = append(out, c)
	}
	return out
}

// Failed reports whether any check hit an HTTP-level failure.
func Failed(checks []Check) bool {
	for _, c := range checks {
		if c.Err != nil {
			return true
		}
	}
	return false
}
