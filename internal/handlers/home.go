package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/nfrund/sitefront/web/src/templates/components"
	"github.com/nfrund/sitefront/web/src/templates/pages"
)

// HomeHandler serves the front page.
type HomeHandler struct {
	site *Site
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(site *Site) *HomeHandler {
	return &HomeHandler{site: site}
}

// HomeGet handles GET /.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()
	home, err := h.site.Content.Homepage(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("Homepage content unavailable, rendering placeholders", "error", err)
	}

	shell := h.site.shell(c, "")
	page := pages.Home(shell, home, components.ContactFormState{})
	return h.site.render(c, http.StatusOK, page, h.site.meta(c, home, shell))
}
