package components

import (
	"github.com/nfrund/sitefront/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// StatsHeadingPlaceholder is shown when the block has no heading.
const StatsHeadingPlaceholder = "By the numbers"

// Stat is one figure of a stats block.
type Stat struct {
	Value  string
	Label  string
	Suffix string
}

// DefaultStats are shown when the backend provides no items.
var DefaultStats = []Stat{
	{Value: "150", Label: "Clients", Suffix: "+"},
	{Value: "12", Label: "Years"},
	{Value: "98", Label: "Retention", Suffix: "%"},
}

// StatsBlock renders a row of headline figures. stats may be nil.
func StatsBlock(stats content.Object) g.Node {
	items := statsFrom(stats.List("items"))
	if len(items) == 0 {
		items = DefaultStats
	}

	return Section(
		Class("stats container mx-auto px-6 py-16"),
		H2(Class("stats__heading text-3xl font-bold text-center"), g.Text(stats.StringOr("heading", StatsHeadingPlaceholder))),
		Dl(
			Class("mt-10 grid gap-8 sm:grid-cols-3"),
			g.Map(items, func(s Stat) g.Node {
				return Div(
					Class("stats__item text-center"),
					Dt(Class("stats__label text-slate-500"), g.Text(s.Label)),
					Dd(Class("stats__value text-4xl font-extrabold text-indigo-600"), g.Text(FormatNumber(s.Value)+s.Suffix)),
				)
			}),
		),
	)
}

func statsFrom(objs []content.Object) []Stat {
	var out []Stat
	for _, o := range objs {
		value := o.String("value")
		if value == "" {
			continue
		}
		out = append(out, Stat{
			Value:  value,
			Label:  o.StringOr("label", ""),
			Suffix: o.String("suffix"),
		})
	}
	return out
}
