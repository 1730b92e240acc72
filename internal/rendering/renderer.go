package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/seo"
)

// Renderer renders templ or gomponents components. It is also echo's
// renderer, so handlers can return fragments with c.Render.
type Renderer interface {
	echo.Renderer

	// RenderComponent renders a component to bytes. Used for htmx fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderDocument renders a full document and applies meta to its head.
	// A nil meta leaves the head as rendered.
	RenderDocument(ctx context.Context, component any, meta *seo.Meta) ([]byte, error)

	// RenderPage writes a full document to the response.
	RenderPage(c echo.Context, status int, component any, meta *seo.Meta) error
}

// UniversalRenderer handles both templ.Component and gomponents.Node.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements Renderer.
func (r *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDocument implements Renderer.
func (r *UniversalRenderer) RenderDocument(ctx context.Context, component any, meta *seo.Meta) ([]byte, error) {
	out, err := r.RenderComponent(ctx, component)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return out, nil
	}
	rewritten, err := seo.Rewrite(bytes.NewReader(out), *meta)
	if err != nil {
		return nil, fmt.Errorf("failed to apply page metadata: %w", err)
	}
	return rewritten, nil
}

// RenderPage implements Renderer. The document is buffered so a render
// failure can still become a proper error response.
func (r *UniversalRenderer) RenderPage(c echo.Context, status int, component any, meta *seo.Meta) error {
	out, err := r.RenderDocument(c.Request().Context(), component, meta)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to render page", "path", c.Path(), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return c.HTMLBlob(status, out)
}

// Render implements echo.Renderer for c.Render(status, name, component).
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
