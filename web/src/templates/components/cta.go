package components

import (
	"github.com/nfrund/sitefront/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	CTATitlePlaceholder  = "Ready to start?"
	CTALabelPlaceholder  = "See open roles"
	CTAButtonPlaceholder = "/jobs"
)

// CTABanner renders a full-width call to action. cta may be nil.
func CTABanner(cta content.Object) g.Node {
	return Section(
		Class("cta bg-indigo-600 text-white"),
		Div(
			Class("container mx-auto flex flex-col items-center gap-6 px-6 py-12 md:flex-row md:justify-between"),
			H2(Class("cta__title text-3xl font-bold"), g.Text(cta.StringOr("title", CTATitlePlaceholder))),
			A(
				Class("cta__button rounded-lg bg-white px-6 py-3 font-semibold text-indigo-700"),
				Href(cta.StringOr("buttonUrl", CTAButtonPlaceholder)),
				g.Text(cta.StringOr("buttonLabel", CTALabelPlaceholder)),
			),
		),
	)
}
