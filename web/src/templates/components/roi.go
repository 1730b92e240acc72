package components

import (
	"strconv"

	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/roi"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const (
	ROIHeadingPlaceholder = "What could you save?"
	ROIIntroPlaceholder   = "Adjust the numbers to match your team and see a first-year estimate."
	ROIResultID           = "roi-result"
)

// ROICalculator renders the calculator form with an initial result.
// page may be nil.
func ROICalculator(page content.Object, in roi.Input, fieldErrors map[string]string) g.Node {
	return Section(
		Class("roi container mx-auto max-w-3xl px-6 py-16"),
		H2(Class("roi__heading text-3xl font-bold"), g.Text(page.StringOr("roi.heading", ROIHeadingPlaceholder))),
		P(Class("roi__intro mt-2 text-slate-600"), g.Text(page.StringOr("roi.intro", ROIIntroPlaceholder))),
		g.El("form",
			Method("get"),
			Action("/roi"),
			hx.Get("/roi/estimate"),
			hx.Trigger("input changed delay:300ms from:find input, submit"),
			hx.Target("#"+ROIResultID),
			Class("mt-8 grid gap-4 sm:grid-cols-2"),
			numberField("team_size", "Team size", strconv.Itoa(in.TeamSize), "1", fieldErrors),
			numberField("hours_per_week", "Hours per person per week on manual work", ftoa(in.HoursPerWeek), "0.5", fieldErrors),
			numberField("hourly_rate", "Hourly cost ($)", ftoa(in.HourlyRate), "1", fieldErrors),
			numberField("efficiency_gain", "Time saved (%)", ftoa(in.EfficiencyGain), "1", fieldErrors),
			numberField("investment", "Investment ($)", ftoa(in.Investment), "100", fieldErrors),
			Button(Type("submit"), Class("rounded-lg bg-indigo-600 px-6 py-3 font-semibold text-white"), g.Text("Calculate")),
		),
		g.If(len(fieldErrors) == 0, ROIResult(roi.Estimate(in))),
		g.If(len(fieldErrors) > 0, ROIInvalid()),
	)
}

// ROIResult renders the estimate fragment that htmx swaps in.
func ROIResult(r roi.Result) g.Node {
	payback := "n/a"
	if r.PaybackMonths > 0 {
		payback = printer.Sprintf("%.1f months", r.PaybackMonths)
	}
	roiPct := "n/a"
	if r.ROIPercent != 0 {
		roiPct = printer.Sprintf("%.0f%%", r.ROIPercent)
	}

	return Div(
		ID(ROIResultID),
		Class("roi-result mt-10 grid gap-6 sm:grid-cols-2"),
		resultItem("Hours saved per year", FormatNumber(ftoa(r.HoursSaved))),
		resultItem("Annual savings", FormatCurrency(r.AnnualSavings)),
		resultItem("First-year net return", FormatCurrency(r.NetReturn)),
		resultItem("Return on investment", roiPct),
		resultItem("Payback period", payback),
	)
}

// ROIInvalid replaces the result while the form holds invalid values.
func ROIInvalid() g.Node {
	return Div(
		ID(ROIResultID),
		Class("roi-result mt-10 text-red-600"),
		P(g.Text("Check the highlighted fields to see your estimate.")),
	)
}

func resultItem(label, value string) g.Node {
	return Div(
		Class("roi-result__item rounded-xl bg-slate-50 p-6"),
		Div(Class("roi-result__label text-slate-500"), g.Text(label)),
		Div(Class("roi-result__value text-3xl font-bold"), g.Text(value)),
	)
}

func numberField(name, label, value, step string, fieldErrors map[string]string) g.Node {
	id := "roi-" + name
	return Div(
		g.El("label", g.Attr("for", id), Class("block font-medium"), g.Text(label)),
		Input(
			ID(id),
			Name(name),
			Type("number"),
			g.Attr("step", step),
			g.Attr("min", "0"),
			Value(value),
			Class("mt-1 w-full rounded border p-2"),
		),
		fieldError(fieldErrors[name]),
	)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
