package components

import (
	"github.com/nfrund/sitefront/internal/content"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const (
	ContactHeadingPlaceholder = "Let's talk"
	ContactIntroPlaceholder   = "Tell us about your project and we'll get back to you within one business day."
	ContactSubmitPlaceholder  = "Send message"
	ContactFormID             = "contact-form"
)

// ContactFormState carries submitted values and field errors back into the form.
type ContactFormState struct {
	Name    string
	Email   string
	Company string
	Message string
	Errors  map[string]string
	Success string
}

// ContactForm renders the contact section. contact may be nil.
// The form posts with htmx and swaps itself with the server's response;
// without JavaScript it falls back to a regular POST.
func ContactForm(contact content.Object, state ContactFormState) g.Node {
	return Section(
		ID(ContactFormID),
		Class("contact container mx-auto max-w-2xl px-6 py-16"),
		H2(Class("contact__heading text-3xl font-bold"), g.Text(contact.StringOr("heading", ContactHeadingPlaceholder))),
		P(Class("contact__intro mt-2 text-slate-600"), g.Text(contact.StringOr("intro", ContactIntroPlaceholder))),
		g.If(state.Success != "",
			P(Class("contact__success mt-4 rounded bg-green-50 p-3 text-green-800"), g.Attr("role", "status"), g.Text(state.Success)),
		),
		g.El("form",
			Method("post"),
			Action("/contact"),
			hx.Post("/contact"),
			hx.Target("#"+ContactFormID),
			hx.Swap("outerHTML"),
			Class("mt-8 space-y-4"),
			field("name", "Name", "text", state.Name, state.Errors["name"], true),
			field("email", "Email", "email", state.Email, state.Errors["email"], true),
			field("company", "Company", "text", state.Company, state.Errors["company"], false),
			Div(
				g.El("label", g.Attr("for", "contact-message"), Class("block font-medium"), g.Text("Message")),
				Textarea(
					ID("contact-message"),
					Name("message"),
					g.Attr("rows", "5"),
					Required(),
					Class("mt-1 w-full rounded border p-2"),
					g.Text(state.Message),
				),
				fieldError(state.Errors["message"]),
			),
			fieldError(state.Errors[""]),
			Button(
				Type("submit"),
				Class("rounded-lg bg-indigo-600 px-6 py-3 font-semibold text-white"),
				g.Text(contact.StringOr("submitLabel", ContactSubmitPlaceholder)),
			),
		),
	)
}

func field(name, label, inputType, value, errMsg string, required bool) g.Node {
	id := "contact-" + name
	return Div(
		g.El("label", g.Attr("for", id), Class("block font-medium"), g.Text(label)),
		Input(
			ID(id),
			Name(name),
			Type(inputType),
			Value(value),
			g.If(required, Required()),
			Class("mt-1 w-full rounded border p-2"),
		),
		fieldError(errMsg),
	)
}

func fieldError(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return P(Class("field-error mt-1 text-sm text-red-600"), g.Text(msg))
}
