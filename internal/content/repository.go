package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/sitefront/internal/domain"
	"github.com/nfrund/sitefront/internal/graphql"
	"github.com/nfrund/sitefront/internal/pagination"
	"github.com/nfrund/sitefront/internal/queries"
)

// Fetcher executes a GraphQL document. *graphql.Client implements it.
type Fetcher interface {
	Do(ctx context.Context, query string, variables map[string]any) (*graphql.Response, error)
}

// Repository issues the named queries and hands back content objects.
type Repository struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewRepository creates a Repository on top of fetcher.
func NewRepository(fetcher Fetcher, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{fetcher: fetcher, logger: logger}
}

// JobPage is one page of the job listing.
type JobPage struct {
	Jobs       []Object
	Total      int // -1 when the backend does not report a total
	HasMore    bool
	Pagination pagination.Pagination
}

// run executes a query. GraphQL-level errors are logged and whatever data
// came back alongside them is still returned.
func (r *Repository) run(ctx context.Context, name, query string, vars map[string]any) (Object, error) {
	resp, err := r.fetcher.Do(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", name, err)
	}
	if resp.HasErrors() {
		msgs := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			msgs[i] = e.Message
		}
		r.logger.Warn("GraphQL query returned errors", "query", name, "errors", msgs)
	}
	var data Object
	if resp.HasData() {
		if err := resp.Decode(&data); err != nil {
			return nil, fmt.Errorf("%s query: %w", name, err)
		}
	}
	return data, nil
}

// Homepage returns the front page object, or nil when the backend has none.
func (r *Repository) Homepage(ctx context.Context) (Object, error) {
	data, err := r.run(ctx, "homepage", queries.Homepage, nil)
	if err != nil {
		return nil, err
	}
	return data.Object("page"), nil
}

// Page returns the page at uri, or nil when the backend has none.
func (r *Repository) Page(ctx context.Context, uri string) (Object, error) {
	data, err := r.run(ctx, "page", queries.PageByURI, map[string]any{"uri": uri})
	if err != nil {
		return nil, err
	}
	return data.Object("page"), nil
}

// Global returns the site-wide settings flattened into one object. Missing
// site settings fall back to WordPress general settings.
func (r *Repository) Global(ctx context.Context) (Object, error) {
	data, err := r.run(ctx, "global", queries.GlobalOptions, nil)
	if err != nil {
		return nil, err
	}
	settings := data.Object("globalOptions.siteSettings")
	out := Object{}
	for k, v := range settings {
		out[k] = v
	}
	if out.String("siteName") == "" {
		if title := data.String("generalSettings.title"); title != "" {
			out["siteName"] = title
		}
	}
	if out.String("tagline") == "" {
		if desc := data.String("generalSettings.description"); desc != "" {
			out["tagline"] = desc
		}
	}
	if out.Empty() {
		return nil, nil
	}
	return out, nil
}

// Jobs returns one page of job postings.
func (r *Repository) Jobs(ctx context.Context, p pagination.Pagination) (JobPage, error) {
	page := JobPage{Total: -1, Pagination: p}
	data, err := r.run(ctx, "jobs", queries.JobListings, map[string]any{
		"offset": p.Offset,
		"size":   p.ItemsPerPage,
	})
	if err != nil {
		return page, err
	}
	page.Jobs = data.List("jobs.nodes")
	if total, ok := data.Int("jobs.pageInfo.offsetPagination.total"); ok {
		page.Total = total
	}
	page.HasMore = data.Bool("jobs.pageInfo.offsetPagination.hasMore")
	return page, nil
}

// Job returns a single job posting. A missing posting is domain.ErrNotFound.
func (r *Repository) Job(ctx context.Context, slug string) (Object, error) {
	data, err := r.run(ctx, "job", queries.JobBySlug, map[string]any{"slug": slug})
	if err != nil {
		return nil, err
	}
	job := data.Object("job")
	if job.Empty() {
		return nil, fmt.Errorf("job %q: %w", slug, domain.ErrNotFound)
	}
	return job, nil
}
