package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/nfrund/sitefront/internal/view"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
)

var printer = message.NewPrinter(language.English)

// FormatNumber groups digits the way English readers expect ("12,500").
// Non-numeric input and values outside the int64 range are returned unchanged.
func FormatNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(n) || math.Abs(n) >= math.MaxInt64 {
		return raw
	}
	if n == math.Trunc(n) {
		return printer.Sprintf("%d", int64(n))
	}
	return printer.Sprintf("%.1f", n)
}

// FormatCurrency renders whole dollars with grouping ("$48,000").
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-" + printer.Sprintf("$%d", int64(math.Round(-v)))
	}
	return printer.Sprintf("$%d", int64(math.Round(v)))
}

// HumanizeLabel turns backend enum values like FULL_TIME into "Full Time".
func HumanizeLabel(raw string) string {
	raw = strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(raw))
	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.English).String(strings.ToLower(raw))
}

// rawHTML renders CMS-owned markup as-is.
func rawHTML(markup string) g.Node {
	return view.AdaptTemplToGomponent(templ.Raw(markup))
}
