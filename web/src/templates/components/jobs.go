package components

import (
	"strconv"

	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/pagination"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	JobTitlePlaceholder    = "Untitled position"
	JobLocationPlaceholder = "Remote"
	JobsEmptyMessage       = "No open positions right now."
	JobBodyPlaceholder     = "Full details for this role are coming soon."
)

// JobCard renders one posting in the listing.
func JobCard(job content.Object) g.Node {
	href := "/jobs"
	if slug := job.String("slug"); slug != "" {
		href = "/jobs/" + slug
	}

	return Article(
		Class("job-card rounded-xl border p-6"),
		H3(Class("job-card__title text-xl font-semibold"),
			A(Href(href), g.Text(job.StringOr("title", JobTitlePlaceholder))),
		),
		jobMeta(job),
		g.If(job.String("excerpt") != "",
			Div(Class("job-card__excerpt mt-3 text-slate-600"), rawHTML(job.String("excerpt"))),
		),
	)
}

func jobMeta(job content.Object) g.Node {
	fields := job.Object("jobFields")
	return Ul(
		Class("job-meta mt-2 flex gap-4 text-sm text-slate-500"),
		Li(Class("job-meta__location"), g.Text(fields.StringOr("location", JobLocationPlaceholder))),
		g.If(fields.String("department") != "",
			Li(Class("job-meta__department"), g.Text(fields.String("department"))),
		),
		g.If(fields.String("employmentType") != "",
			Li(Class("job-meta__type"), g.Text(HumanizeLabel(fields.String("employmentType")))),
		),
	)
}

// JobList renders a page of postings followed by its navigation.
func JobList(page content.JobPage, basePath string) g.Node {
	if len(page.Jobs) == 0 {
		return Section(
			Class("jobs container mx-auto px-6 py-16"),
			P(Class("jobs__empty text-slate-500"), g.Text(JobsEmptyMessage)),
			PaginationNav(page.Pagination, page.Total, page.HasMore, basePath),
		)
	}
	return Section(
		Class("jobs container mx-auto px-6 py-16"),
		Div(Class("grid gap-6"), g.Map(page.Jobs, JobCard)),
		PaginationNav(page.Pagination, page.Total, page.HasMore, basePath),
	)
}

// PaginationNav renders previous/next links. A negative total means the
// backend did not report one; hasMore then decides whether "next" appears.
func PaginationNav(p pagination.Pagination, total int, hasMore bool, basePath string) g.Node {
	links := p.Links(total, basePath)
	if total < 0 && !hasMore {
		links.Next = ""
	}
	if links.Prev == "" && links.Next == "" {
		return nil
	}

	label := "Page " + strconv.Itoa(p.CurrentPage)
	if last := p.TotalPages(total); last > 0 {
		label += " of " + strconv.Itoa(last)
	}

	return Nav(
		Class("pagination mt-10 flex items-center justify-between"),
		g.Attr("aria-label", "Pagination"),
		g.If(links.Prev != "", A(Class("pagination__prev"), Href(links.Prev), g.Attr("rel", "prev"), g.Text("Previous"))),
		Span(Class("pagination__current text-slate-500"), g.Text(label)),
		g.If(links.Next != "", A(Class("pagination__next"), Href(links.Next), g.Attr("rel", "next"), g.Text("Next"))),
	)
}

// JobDetail renders a single posting. The body is CMS-owned HTML.
func JobDetail(job content.Object) g.Node {
	applyURL := job.StringOr("jobFields.applyUrl", "/#"+ContactFormID)
	body := job.String("content")

	return Article(
		Class("job container mx-auto max-w-3xl px-6 py-16"),
		A(Class("job__back text-indigo-600"), Href("/jobs"), g.Text("← All positions")),
		H1(Class("job__title mt-4 text-4xl font-extrabold"), g.Text(job.StringOr("title", JobTitlePlaceholder))),
		jobMeta(job),
		Div(
			Class("job__body prose mt-8"),
			g.If(body != "", rawHTML(body)),
			g.If(body == "", P(g.Text(JobBodyPlaceholder))),
		),
		A(
			Class("job__apply mt-10 inline-block rounded-lg bg-indigo-600 px-6 py-3 font-semibold text-white"),
			Href(applyURL),
			g.Text("Apply now"),
		),
	)
}
