// Package markdown converts CMS-owned HTML into Markdown for the CLI and the
// MCP tools.
package markdown

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/nfrund/sitefront/internal/content"
	"golang.org/x/net/html"
)

// FromHTML converts an HTML fragment. Empty input yields an empty string.
func FromHTML(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	out, err := htmltomarkdown.ConvertNode(doc)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Job renders a posting as a Markdown document: a heading, a metadata line
// and the converted body.
func Job(job content.Object) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", job.StringOr("title", "Untitled position"))

	fields := job.Object("jobFields")
	var meta []string
	for _, key := range []string{"location", "department", "employmentType"} {
		if v := fields.String(key); v != "" {
			meta = append(meta, v)
		}
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "\n_%s_\n", strings.Join(meta, " · "))
	}

	body := job.String("content")
	if body == "" {
		body = job.String("excerpt")
	}
	md, err := FromHTML(body)
	if err != nil {
		return "", err
	}
	if md != "" {
		fmt.Fprintf(&b, "\n%s\n", md)
	}
	if apply := fields.String("applyUrl"); apply != "" {
		fmt.Fprintf(&b, "\n[Apply](%s)\n", apply)
	}
	return b.String(), nil
}
