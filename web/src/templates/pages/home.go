package pages

import (
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/web/src/templates/components"
	"github.com/nfrund/sitefront/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// Home composes the front page from its content blocks. home may be nil, in
// which case every block renders its placeholder.
func Home(shell layouts.Props, home content.Object, contact components.ContactFormState) g.Node {
	blocks := home.Object("homepageBlocks")

	shell.Body = g.Group{
		components.HeroHeader(blocks.Object("hero")),
		components.StatsBlock(blocks.Object("stats")),
		components.CardGrid(blocks.Object("cards")),
		components.FounderSpotlight(blocks.Object("founder")),
		components.CTABanner(blocks.Object("cta")),
		components.ContactForm(blocks.Object("contact"), contact),
	}
	return layouts.Document(shell)
}
