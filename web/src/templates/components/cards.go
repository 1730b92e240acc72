package components

import (
	"github.com/nfrund/sitefront/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const CardsHeadingPlaceholder = "What we do"

// Card is one tile of a card grid.
type Card struct {
	Title     string
	Text      string
	LinkLabel string
	LinkURL   string
}

// DefaultCards are shown when the backend provides no items.
var DefaultCards = []Card{
	{Title: "Strategy", Text: "Find the problems worth solving before writing a line of code."},
	{Title: "Engineering", Text: "Reliable software, delivered in small, steady increments."},
	{Title: "Growth", Text: "Measure what matters and keep improving after launch."},
}

// CardGrid renders a heading and a grid of cards. cards may be nil.
func CardGrid(cards content.Object) g.Node {
	items := cardsFrom(cards.List("items"))
	if len(items) == 0 {
		items = DefaultCards
	}

	return Section(
		Class("cards container mx-auto px-6 py-16"),
		H2(Class("cards__heading text-3xl font-bold"), g.Text(cards.StringOr("heading", CardsHeadingPlaceholder))),
		Div(
			Class("mt-10 grid gap-6 md:grid-cols-3"),
			g.Map(items, func(c Card) g.Node {
				return Article(
					Class("card rounded-xl bg-white p-6 shadow"),
					H3(Class("card__title text-xl font-semibold"), g.Text(c.Title)),
					P(Class("card__text mt-2 text-slate-600"), g.Text(c.Text)),
					g.If(c.LinkURL != "",
						A(Class("card__link mt-4 inline-block text-indigo-600"), Href(c.LinkURL), g.Text(content.Or(c.LinkLabel, "Learn more"))),
					),
				)
			}),
		),
	)
}

func cardsFrom(objs []content.Object) []Card {
	var out []Card
	for _, o := range objs {
		title := o.String("title")
		if title == "" {
			continue
		}
		out = append(out, Card{
			Title:     title,
			Text:      o.String("text"),
			LinkLabel: o.String("link.title"),
			LinkURL:   o.String("link.url"),
		})
	}
	return out
}
