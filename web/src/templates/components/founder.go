package components

import (
	"github.com/nfrund/sitefront/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	FounderNamePlaceholder  = "Our Founder"
	FounderRolePlaceholder  = "Founder & CEO"
	FounderQuotePlaceholder = "We started this company to do work we'd be proud to put our name on."
	FounderImagePlaceholder = "/static/img/founder-placeholder.svg"
)

// FounderSpotlight renders a portrait with a pull quote. founder may be nil.
func FounderSpotlight(founder content.Object) g.Node {
	name := founder.StringOr("name", FounderNamePlaceholder)

	return Section(
		Class("founder container mx-auto grid items-center gap-10 px-6 py-16 md:grid-cols-2"),
		Img(
			Class("founder__image rounded-2xl shadow-xl"),
			Src(founder.StringOr("image.sourceUrl", FounderImagePlaceholder)),
			Alt(founder.StringOr("image.altText", name)),
		),
		Figure(
			g.El("blockquote", Class("founder__quote text-2xl italic"), g.Text(founder.StringOr("quote", FounderQuotePlaceholder))),
			g.El("figcaption",
				Class("mt-6"),
				Strong(Class("founder__name block text-lg"), g.Text(name)),
				Span(Class("founder__role text-slate-500"), g.Text(founder.StringOr("role", FounderRolePlaceholder))),
			),
		),
	)
}
