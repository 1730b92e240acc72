package handlers

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/config"
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/nfrund/sitefront/internal/pagination"
	"github.com/nfrund/sitefront/internal/rendering"
	"github.com/nfrund/sitefront/internal/seo"
	"github.com/nfrund/sitefront/internal/view"
	"github.com/nfrund/sitefront/web/src/templates/layouts"
)

// ContentSource is the read side of the content repository.
type ContentSource interface {
	Homepage(ctx context.Context) (content.Object, error)
	Page(ctx context.Context, uri string) (content.Object, error)
	Global(ctx context.Context) (content.Object, error)
	Jobs(ctx context.Context, p pagination.Pagination) (content.JobPage, error)
	Job(ctx context.Context, slug string) (content.Object, error)
}

// Site holds what every page handler needs.
type Site struct {
	Content  ContentSource
	Renderer rendering.Renderer
	Config   config.Provider
}

// shell fetches the global content and flash messages that wrap every page.
// A backend failure is logged and the page falls back to placeholders.
func (s *Site) shell(c echo.Context, title string) layouts.Props {
	ctx := c.Request().Context()
	global, err := s.Content.Global(ctx)
	if err != nil {
		middleware.FromContext(ctx).Warn("Global content unavailable", "error", err)
	}
	if global == nil {
		global = content.Object{"siteName": s.Config.GetSiteName()}
	} else if global.String("siteName") == "" {
		global["siteName"] = s.Config.GetSiteName()
	}

	flash := view.GetFlashData(c)
	return layouts.Props{
		Title:   title,
		Global:  global,
		Success: flash.Success,
		Errors:  flash.Error,
	}
}

// meta derives page metadata from obj and resolves the canonical link
// against the public base URL.
func (s *Site) meta(c echo.Context, obj content.Object, shell layouts.Props) *seo.Meta {
	m := seo.FromContent(obj, seo.Meta{
		Title:       layouts.CalculateTitle(shell.Title, shell.Global.String("siteName")),
		Description: shell.Global.String("tagline"),
		Canonical:   c.Request().URL.Path,
	}).Canonicalize(s.Config.GetAppBaseURL())
	return &m
}

// render writes a full page.
func (s *Site) render(c echo.Context, status int, page any, meta *seo.Meta) error {
	return s.Renderer.RenderPage(c, status, page, meta)
}

// isHTMX reports whether the request came from htmx.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
