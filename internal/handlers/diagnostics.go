package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/diagnostics"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/nfrund/sitefront/internal/queries"
	"github.com/nfrund/sitefront/internal/seo"
	"github.com/nfrund/sitefront/web/src/templates/pages"
)

// DiagnosticsHandler serves /test-working, which runs every named query
// against the backend and shows the outcome.
type DiagnosticsHandler struct {
	site     *Site
	fetcher  content.Fetcher
	endpoint string
}

// NewDiagnosticsHandler creates a new DiagnosticsHandler.
func NewDiagnosticsHandler(site *Site, fetcher content.Fetcher, endpoint string) *DiagnosticsHandler {
	return &DiagnosticsHandler{site: site, fetcher: fetcher, endpoint: endpoint}
}

// TestWorkingGet handles GET /test-working.
func (h *DiagnosticsHandler) TestWorkingGet(c echo.Context) error {
	ctx := c.Request().Context()
	checks := diagnostics.Run(ctx, h.fetcher, queries.All())
	for _, chk := range checks {
		if !chk.OK() {
			middleware.FromContext(ctx).Warn("Backend check failed",
				"query", chk.Name, "error", chk.Err, "graphql_errors", len(chk.Errors))
		}
	}

	shell := h.site.shell(c, "Backend status")
	meta := &seo.Meta{NoIndex: true, NoFollow: true}
	return h.site.render(c, http.StatusOK, pages.TestWorking(shell, h.endpoint, checks), meta)
}
