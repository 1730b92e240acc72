// Package mcpserver exposes site content to MCP clients as tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/domain"
	"github.com/nfrund/sitefront/internal/markdown"
	"github.com/nfrund/sitefront/internal/pagination"
)

// Version is reported to MCP clients during initialization.
const Version = "0.1.0"

// Content is the read side of the content repository.
type Content interface {
	Homepage(ctx context.Context) (content.Object, error)
	Jobs(ctx context.Context, p pagination.Pagination) (content.JobPage, error)
	Job(ctx context.Context, slug string) (content.Object, error)
}

// ListJobsRequest is the list_jobs argument set. Page defaults to 1.
type ListJobsRequest struct {
	Page int `json:"page"`
}

// GetJobRequest is the get_job argument set.
type GetJobRequest struct {
	Slug string `json:"slug"`
}

// JobSummary is one posting in a list_jobs response.
type JobSummary struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Location   string `json:"location,omitempty"`
	Department string `json:"department,omitempty"`
	Type       string `json:"employment_type,omitempty"`
}

// ListJobsResponse is the list_jobs result. Total is -1 when the backend
// does not report one.
type ListJobsResponse struct {
	Page    int          `json:"page"`
	Total   int          `json:"total"`
	HasMore bool         `json:"has_more"`
	Jobs    []JobSummary `json:"jobs"`
}

// GetJobResponse is the get_job result.
type GetJobResponse struct {
	Slug     string `json:"slug"`
	Markdown string `json:"markdown"`
}

// Tools holds the handlers. They are methods so tests can call them directly.
type Tools struct {
	content Content
	perPage int
}

// NewTools creates the tool handlers.
func NewTools(c Content, perPage int) *Tools {
	if perPage <= 0 {
		perPage = pagination.DefaultPerPage
	}
	return &Tools{content: c, perPage: perPage}
}

// NewServer registers get_homepage, list_jobs and get_job.
func NewServer(t *Tools) *server.MCPServer {
	s := server.NewMCPServer(
		"Sitefront content",
		Version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("get_homepage",
		mcp.WithDescription("Get the homepage content blocks as JSON"),
	), mcp.NewTypedToolHandler(t.GetHomepage))

	s.AddTool(mcp.NewTool("list_jobs",
		mcp.WithDescription("List open job postings, one page at a time"),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1"),
		),
	), mcp.NewTypedToolHandler(t.ListJobs))

	s.AddTool(mcp.NewTool("get_job",
		mcp.WithDescription("Get a single job posting as markdown"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The job's slug, as returned by list_jobs"),
		),
	), mcp.NewTypedToolHandler(t.GetJob))

	return s
}

type emptyArgs struct{}

// GetHomepage handles get_homepage.
func (t *Tools) GetHomepage(ctx context.Context, _ mcp.CallToolRequest, _ emptyArgs) (*mcp.CallToolResult, error) {
	home, err := t.content.Homepage(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get homepage: %v", err)), nil
	}
	if home == nil {
		return mcp.NewToolResultError("the backend has no homepage"), nil
	}
	return jsonResult(home)
}

// ListJobs handles list_jobs.
func (t *Tools) ListJobs(ctx context.Context, _ mcp.CallToolRequest, args ListJobsRequest) (*mcp.CallToolResult, error) {
	p := pagination.FromSearchParams(strconv.Itoa(args.Page), t.perPage)
	page, err := t.content.Jobs(ctx, p)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list jobs: %v", err)), nil
	}

	resp := ListJobsResponse{Page: p.CurrentPage, Total: page.Total, HasMore: page.HasMore, Jobs: []JobSummary{}}
	for _, job := range page.Jobs {
		fields := job.Object("jobFields")
		resp.Jobs = append(resp.Jobs, JobSummary{
			Title:      job.String("title"),
			Slug:       job.String("slug"),
			Location:   fields.String("location"),
			Department: fields.String("department"),
			Type:       fields.String("employmentType"),
		})
	}
	return jsonResult(resp)
}

// GetJob handles get_job.
func (t *Tools) GetJob(ctx context.Context, _ mcp.CallToolRequest, args GetJobRequest) (*mcp.CallToolResult, error) {
	if args.Slug == "" {
		return mcp.NewToolResultError("slug is required"), nil
	}
	job, err := t.content.Job(ctx, args.Slug)
	if errors.Is(err, domain.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("no job with slug %q", args.Slug)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get job: %v", err)), nil
	}
	md, err := markdown.Job(job)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to convert job: %v", err)), nil
	}
	return jsonResult(GetJobResponse{Slug: args.Slug, Markdown: md})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
