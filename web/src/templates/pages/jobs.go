package pages

import (
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/web/src/templates/components"
	"github.com/nfrund/sitefront/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const JobsHeading = "Open positions"

// Jobs renders one page of the job listing.
func Jobs(shell layouts.Props, page content.JobPage) g.Node {
	shell.Body = g.Group{
		Div(
			Class("container mx-auto px-6 pt-16"),
			H1(Class("text-4xl font-extrabold"), g.Text(JobsHeading)),
		),
		components.JobList(page, "/jobs"),
	}
	return layouts.Document(shell)
}

// Job renders a single posting.
func Job(shell layouts.Props, job content.Object) g.Node {
	shell.Body = components.JobDetail(job)
	return layouts.Document(shell)
}
