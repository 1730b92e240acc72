package components

import (
	"strconv"
	"time"

	"github.com/nfrund/sitefront/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const SiteNamePlaceholder = "Sitefront"

// MenuItem is a navigation link.
type MenuItem struct {
	Label string
	URL   string
}

// DefaultMenu is used when the backend has no menu configured.
var DefaultMenu = []MenuItem{
	{Label: "Home", URL: "/"},
	{Label: "ROI", URL: "/roi"},
	{Label: "Careers", URL: "/jobs"},
	{Label: "Contact", URL: "/#" + ContactFormID},
}

// SiteHeader renders the top navigation from the global options. global may be nil.
func SiteHeader(global content.Object) g.Node {
	menu := menuFrom(global.List("menu"))
	if len(menu) == 0 {
		menu = DefaultMenu
	}

	return Header(
		Class("site-header border-b bg-white"),
		Div(
			Class("container mx-auto flex items-center justify-between px-6 py-4"),
			A(Class("site-header__brand text-xl font-bold"), Href("/"), g.Text(global.StringOr("siteName", SiteNamePlaceholder))),
			Nav(
				Ul(
					Class("flex gap-6"),
					g.Map(menu, func(m MenuItem) g.Node {
						return Li(A(Class("site-header__link"), Href(m.URL), g.Text(m.Label)))
					}),
				),
			),
		),
	)
}

// SiteFooter renders the footer from the global options. global may be nil.
func SiteFooter(global content.Object) g.Node {
	name := global.StringOr("siteName", SiteNamePlaceholder)
	copyright := global.StringOr("copyright", "© "+strconv.Itoa(time.Now().Year())+" "+name)
	social := menuFrom(global.List("social"))

	return Footer(
		Class("site-footer mt-16 bg-slate-900 text-slate-300"),
		Div(
			Class("container mx-auto flex flex-col gap-4 px-6 py-10 md:flex-row md:justify-between"),
			Div(
				P(Class("site-footer__name font-semibold text-white"), g.Text(name)),
				g.If(global.String("tagline") != "", P(Class("site-footer__tagline"), g.Text(global.String("tagline")))),
				g.If(global.String("contactEmail") != "",
					A(Class("site-footer__email"), Href("mailto:"+global.String("contactEmail")), g.Text(global.String("contactEmail"))),
				),
			),
			g.If(len(social) > 0,
				Ul(Class("site-footer__social flex gap-4"), g.Map(social, func(m MenuItem) g.Node {
					return Li(A(Href(m.URL), g.Attr("rel", "noopener"), g.Text(m.Label)))
				})),
			),
			P(Class("site-footer__copyright text-sm"), g.Text(copyright)),
		),
	)
}

// FlashMessages renders one-shot notices.
func FlashMessages(success, errs []string) g.Node {
	if len(success) == 0 && len(errs) == 0 {
		return nil
	}
	return Div(
		Class("flash container mx-auto px-6 pt-4"),
		g.Map(success, func(m string) g.Node {
			return P(Class("flash__success rounded bg-green-50 p-3 text-green-800"), g.Text(m))
		}),
		g.Map(errs, func(m string) g.Node {
			return P(Class("flash__error rounded bg-red-50 p-3 text-red-800"), g.Text(m))
		}),
	)
}

func menuFrom(objs []content.Object) []MenuItem {
	var out []MenuItem
	for _, o := range objs {
		url := o.String("url")
		if url == "" {
			continue
		}
		out = append(out, MenuItem{Label: o.StringOr("label", url), URL: url})
	}
	return out
}
