// Package output prints CLI results as tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/diagnostics"
)

// Formats accepted by --format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ValidFormat reports whether f is a known format.
func ValidFormat(f string) bool {
	return f == FormatTable || f == FormatJSON
}

// CheckDisplay is a diagnostics check in JSON form.
type CheckDisplay struct {
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	DurationMS  int64    `json:"duration_ms"`
	Errors      []string `json:"errors,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// JobDisplay is a job posting in JSON form.
type JobDisplay struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Location string `json:"location,omitempty"`
	Type     string `json:"employment_type,omitempty"`
}

// Status classifies a check the same way the /test-working page does.
func Status(c diagnostics.Check) string {
	switch {
	case c.Err != nil:
		return "failed"
	case len(c.Errors) > 0:
		return "errors"
	case !c.HasData:
		return "empty"
	default:
		return "ok"
	}
}

func toCheckDisplay(c diagnostics.Check) CheckDisplay {
	d := CheckDisplay{Name: c.Name, Status: Status(c), DurationMS: c.Duration.Milliseconds()}
	if c.Err != nil {
		d.Errors = append(d.Errors, c.Err.Error())
	}
	for _, e := range c.Errors {
		d.Errors = append(d.Errors, e.Message)
	}
	for _, s := range c.Suggestions {
		d.Suggestions = append(d.Suggestions, fmt.Sprintf("%q: did you mean %s?", s.Subject, strings.Join(s.Candidates, ", ")))
	}
	return d
}

// Checks prints diagnostics results.
func Checks(w io.Writer, checks []diagnostics.Check, format string) error {
	if format == FormatJSON {
		out := make([]CheckDisplay, len(checks))
		for i, c := range checks {
			out[i] = toCheckDisplay(c)
		}
		return writeJSON(w, struct {
			Checks []CheckDisplay `json:"checks"`
			Count  int            `json:"count"`
		}{out, len(out)})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "QUERY\tSTATUS\tTIME\tDETAIL")
	fmt.Fprintln(tw, "-----\t------\t----\t------")
	for _, c := range checks {
		d := toCheckDisplay(c)
		detail := "-"
		if len(d.Errors) > 0 {
			detail = truncateString(d.Errors[0], 60)
		}
		fmt.Fprintf(tw, "%s\t%s\t%dms\t%s\n", d.Name, d.Status, d.DurationMS, detail)
		for _, s := range d.Suggestions {
			fmt.Fprintf(tw, "\t\t\t%s\n", s)
		}
	}
	return tw.Flush()
}

// Jobs prints one page of postings.
func Jobs(w io.Writer, page content.JobPage, format string) error {
	out := make([]JobDisplay, len(page.Jobs))
	for i, job := range page.Jobs {
		fields := job.Object("jobFields")
		out[i] = JobDisplay{
			Title:    job.String("title"),
			Slug:     job.String("slug"),
			Location: fields.String("location"),
			Type:     fields.String("employmentType"),
		}
	}

	if format == FormatJSON {
		return writeJSON(w, struct {
			Jobs    []JobDisplay `json:"jobs"`
			Page    int          `json:"page"`
			Total   int          `json:"total"`
			HasMore bool         `json:"has_more"`
		}{out, page.Pagination.CurrentPage, page.Total, page.HasMore})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tSLUG\tLOCATION\tTYPE")
	fmt.Fprintln(tw, "-----\t----\t--------\t----")
	if len(out) == 0 {
		fmt.Fprintln(tw, "No jobs found")
	}
	for _, j := range out {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", truncateString(j.Title, 40), j.Slug, dash(j.Location), dash(j.Type))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
