package components

import (
	"github.com/nfrund/sitefront/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Placeholder copy used when the backend leaves a hero field empty.
const (
	HeroTitlePlaceholder    = "Build what's next"
	HeroSubtitlePlaceholder = "We help teams ship faster."
	HeroCTALabelPlaceholder = "Get in touch"
	HeroCTAURLPlaceholder   = "/#" + ContactFormID
)

// HeroHeader renders the page-top hero section. hero may be nil.
func HeroHeader(hero content.Object) g.Node {
	image := hero.String("image.sourceUrl")

	return Section(
		Class("hero relative overflow-hidden bg-slate-900 text-white"),
		g.If(image != "",
			Img(
				Class("hero__image absolute inset-0 h-full w-full object-cover opacity-40"),
				Src(image),
				Alt(hero.String("image.altText")),
			),
		),
		Div(
			Class("relative container mx-auto px-6 py-24"),
			H1(Class("hero__title text-5xl font-extrabold"), g.Text(hero.StringOr("title", HeroTitlePlaceholder))),
			P(Class("hero__subtitle mt-4 text-xl text-slate-200"), g.Text(hero.StringOr("subtitle", HeroSubtitlePlaceholder))),
			A(
				Class("hero__cta mt-8 inline-block rounded-lg bg-indigo-500 px-6 py-3 font-semibold"),
				Href(hero.StringOr("cta.url", HeroCTAURLPlaceholder)),
				g.Text(hero.StringOr("cta.title", HeroCTALabelPlaceholder)),
			),
		),
	)
}
