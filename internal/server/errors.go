package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/app"
	"github.com/nfrund/sitefront/internal/domain"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/nfrund/sitefront/internal/seo"
	"github.com/nfrund/sitefront/web/src/templates/layouts"
	"github.com/nfrund/sitefront/web/src/templates/pages"
)

// setupErrorHandling installs the HTTP error handler. Unhandled errors are
// logged with a stack trace; visitors get an HTML status page.
func setupErrorHandling(e *echo.Echo, services *app.Services) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := "Something went wrong on our side."

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
			if code >= http.StatusInternalServerError {
				logger.Error("Internal Server Error", "error", err, "path", c.Request().URL.Path)
			}
		case errors.Is(err, domain.ErrNotFound):
			code = http.StatusNotFound
			message = "We couldn't find that page."
		case errors.Is(err, domain.ErrInvalidInput):
			code = http.StatusBadRequest
			message = "The request was invalid."
		default:
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		if code == http.StatusNotFound && message == http.StatusText(http.StatusNotFound) {
			message = "We couldn't find that page."
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if services == nil || services.Renderer == nil {
			_ = c.String(code, message)
			return
		}

		shell := layouts.Props{Title: http.StatusText(code)}
		if services.Config != nil {
			shell.Global = map[string]any{"siteName": services.Config.GetSiteName()}
		}
		page := pages.Error(shell, code, message)
		if rerr := services.Renderer.RenderPage(c, code, page, &seo.Meta{NoIndex: true}); rerr != nil {
			logger.Error("Failed to render error page", "error", rerr)
			_ = c.String(code, message)
		}
	}
}
