package pages

import (
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/roi"
	"github.com/nfrund/sitefront/web/src/templates/components"
	"github.com/nfrund/sitefront/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// ROI renders the calculator page. page is the optional CMS page at /roi.
func ROI(shell layouts.Props, page content.Object, in roi.Input, fieldErrors map[string]string) g.Node {
	shell.Body = components.ROICalculator(page, in, fieldErrors)
	return layouts.Document(shell)
}
