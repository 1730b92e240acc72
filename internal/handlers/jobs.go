package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/domain"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/nfrund/sitefront/internal/pagination"
	"github.com/nfrund/sitefront/internal/seo"
	"github.com/nfrund/sitefront/web/src/templates/pages"
)

// JobsHandler serves the job listing and job detail pages.
type JobsHandler struct {
	site *Site
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(site *Site) *JobsHandler {
	return &JobsHandler{site: site}
}

// ListGet handles GET /jobs?page=N.
func (h *JobsHandler) ListGet(c echo.Context) error {
	ctx := c.Request().Context()
	p := pagination.FromQuery(c.QueryParams(), h.site.Config.GetJobsPerPage())

	page, err := h.site.Content.Jobs(ctx, p)
	if err != nil {
		middleware.FromContext(ctx).Warn("Job listings unavailable", "page", p.CurrentPage, "error", err)
	}

	shell := h.site.shell(c, pages.JobsHeading)
	meta := h.site.meta(c, nil, shell)
	if p.CurrentPage > 1 {
		meta.Canonical += "?page=" + strconv.Itoa(p.CurrentPage)
	}
	return h.site.render(c, http.StatusOK, pages.Jobs(shell, page), meta)
}

// DetailGet handles GET /jobs/:slug.
func (h *JobsHandler) DetailGet(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	job, err := h.site.Content.Job(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		shell := h.site.shell(c, "Position not found")
		page := pages.Error(shell, http.StatusNotFound, "We couldn't find that position. It may have been filled.")
		return h.site.render(c, http.StatusNotFound, page, &seo.Meta{NoIndex: true})
	}
	if err != nil {
		middleware.FromContext(ctx).Warn("Job content unavailable, rendering placeholders", "slug", slug, "error", err)
	}

	shell := h.site.shell(c, job.String("title"))
	return h.site.render(c, http.StatusOK, pages.Job(shell, job), h.site.meta(c, job, shell))
}
