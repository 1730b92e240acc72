package pages

import (
	"strconv"

	"github.com/nfrund/sitefront/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Error renders a status page. message is shown to the visitor as is.
func Error(shell layouts.Props, status int, message string) g.Node {
	shell.Body = Section(
		Class("error-page container mx-auto max-w-2xl px-6 py-24 text-center"),
		P(Class("error-page__status text-6xl font-extrabold text-indigo-600"), g.Text(strconv.Itoa(status))),
		H1(Class("error-page__message mt-4 text-2xl font-semibold"), g.Text(message)),
		A(Class("mt-8 inline-block text-indigo-600"), Href("/"), g.Text("Back to the homepage")),
	)
	return layouts.Document(shell)
}
