package pages

import (
	"strings"
	"time"

	"github.com/nfrund/sitefront/internal/diagnostics"
	"github.com/nfrund/sitefront/internal/graphql"
	"github.com/nfrund/sitefront/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TestWorking renders the backend diagnostics page.
func TestWorking(shell layouts.Props, endpoint string, checks []diagnostics.Check) g.Node {
	shell.Body = Section(
		Class("diagnostics container mx-auto px-6 py-16"),
		H1(Class("text-3xl font-bold"), g.Text("Backend status")),
		P(Class("mt-2 text-slate-600"), g.Text("GraphQL endpoint: "), Code(Class("diagnostics__endpoint"), g.Text(endpoint))),
		Table(
			Class("mt-8 w-full text-left"),
			THead(Tr(Th(g.Text("Query")), Th(g.Text("Status")), Th(g.Text("Time")), Th(g.Text("Details")))),
			TBody(g.Map(checks, checkRow)),
		),
	)
	return layouts.Document(shell)
}

func checkRow(c diagnostics.Check) g.Node {
	status, class := "ok", "diagnostics__status--ok text-green-700"
	switch {
	case c.Err != nil:
		status, class = "failed", "diagnostics__status--failed text-red-700"
	case len(c.Errors) > 0:
		status, class = "errors", "diagnostics__status--errors text-amber-700"
	case !c.HasData:
		status, class = "empty", "diagnostics__status--empty text-slate-500"
	}

	return Tr(
		Class("diagnostics__row"),
		g.Attr("data-query", c.Name),
		Td(Code(g.Text(c.Name))),
		Td(Class("diagnostics__status "+class), g.Text(status)),
		Td(g.Text(c.Duration.Round(time.Millisecond).String())),
		Td(
			g.If(c.Err != nil, P(Class("diagnostics__error"), g.Text(errText(c.Err)))),
			g.Map(c.Errors, func(e graphql.Error) g.Node {
				return P(Class("diagnostics__error"), g.Text(e.Message))
			}),
			g.Map(c.Suggestions, func(s graphql.Suggestion) g.Node {
				return P(Class("diagnostics__suggestion text-sm text-slate-500"),
					g.Textf("%q: did you mean %s?", s.Subject, strings.Join(s.Candidates, ", ")))
			}),
		),
	)
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
