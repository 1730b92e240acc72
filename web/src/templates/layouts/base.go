package layouts

import (
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/web/src/templates/components"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Props configure the base document.
type Props struct {
	Title       string
	Description string
	// Global is the site-wide content object; it may be nil.
	Global  content.Object
	Success []string
	Errors  []string
	Body    g.Node
}

// Document wraps page content in the full HTML document. The head carries
// defaults only; per-page SEO metadata is applied after rendering.
func Document(p Props) g.Node {
	siteName := p.Global.StringOr("siteName", components.SiteNamePlaceholder)
	description := content.Or(p.Description, p.Global.String("tagline"))

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(CalculateTitle(p.Title, siteName))),
				g.If(description != "", Meta(Name("description"), Content(description))),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				Script(Src("https://unpkg.com/htmx.org@2.0.4"), g.Attr("defer")),
			),
			Body(
				Class("min-h-screen bg-slate-50 text-slate-900"),
				components.SiteHeader(p.Global),
				components.FlashMessages(p.Success, p.Errors),
				Main(p.Body),
				components.SiteFooter(p.Global),
			),
		),
	)
}
