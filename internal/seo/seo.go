// Package seo writes page metadata (title, description, robots, canonical)
// into a rendered HTML document.
package seo

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nfrund/sitefront/internal/content"
)

// Meta is the document metadata derived from a content object.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	NoIndex     bool
	NoFollow    bool
}

// Robots renders the robots directive, e.g. "noindex, follow".
func (m Meta) Robots() string {
	index, follow := "index", "follow"
	if m.NoIndex {
		index = "noindex"
	}
	if m.NoFollow {
		follow = "nofollow"
	}
	return index + ", " + follow
}

// Canonicalize resolves a relative canonical link against base.
func (m Meta) Canonicalize(base string) Meta {
	if m.Canonical == "" || base == "" {
		return m
	}
	ref, err := url.Parse(m.Canonical)
	if err != nil || ref.IsAbs() {
		return m
	}
	b, err := url.Parse(base)
	if err != nil {
		return m
	}
	m.Canonical = b.ResolveReference(ref).String()
	return m
}

// FromContent reads metadata from o. Yoast-style fields under "seo" win over
// the plain top-level ones; anything missing comes from fallback.
func FromContent(o content.Object, fallback Meta) Meta {
	m := Meta{
		Title:       firstOf(o, "seo.title", "title"),
		Description: firstOf(o, "seo.metaDesc", "metaDesc", "description"),
		Canonical:   firstOf(o, "seo.canonical", "canonical"),
		NoIndex:     flag(o, "noindex", "seo.metaRobotsNoindex", "noindex"),
		NoFollow:    flag(o, "nofollow", "seo.metaRobotsNofollow", "nofollow"),
	}
	m.Title = content.Or(m.Title, fallback.Title)
	m.Description = content.Or(m.Description, fallback.Description)
	m.Canonical = content.Or(m.Canonical, fallback.Canonical)
	if !hasAny(o, "seo.metaRobotsNoindex", "noindex") {
		m.NoIndex = fallback.NoIndex
	}
	if !hasAny(o, "seo.metaRobotsNofollow", "nofollow") {
		m.NoFollow = fallback.NoFollow
	}
	return m
}

func firstOf(o content.Object, paths ...string) string {
	for _, p := range paths {
		if v := strings.TrimSpace(o.String(p)); v != "" {
			return v
		}
	}
	return ""
}

// flag accepts booleans and the directive word itself (Yoast reports
// "noindex"/"index").
func flag(o content.Object, word string, paths ...string) bool {
	for _, p := range paths {
		if _, ok := o.Get(p); !ok {
			continue
		}
		return o.Bool(p) || strings.EqualFold(o.String(p), word)
	}
	return false
}

func hasAny(o content.Object, paths ...string) bool {
	for _, p := range paths {
		if _, ok := o.Get(p); ok {
			return true
		}
	}
	return false
}

// Apply writes m into doc's head, creating elements that are missing and
// updating those that exist. Empty title, description or canonical leave the
// document untouched; robots is always written.
func Apply(doc *goquery.Document, m Meta) {
	head := doc.Find("head").First()
	if head.Length() == 0 {
		doc.Find("html").First().PrependHtml("<head></head>")
		head = doc.Find("head").First()
	}

	if m.Title != "" {
		title := head.Find("title")
		if title.Length() == 0 {
			head.AppendHtml("<title></title>")
			title = head.Find("title")
		}
		title.First().SetText(m.Title)
	}
	if m.Description != "" {
		ensure(head, `meta[name="description"]`, `<meta name="description"/>`).SetAttr("content", m.Description)
	}
	ensure(head, `meta[name="robots"]`, `<meta name="robots"/>`).SetAttr("content", m.Robots())
	if m.Canonical != "" {
		ensure(head, `link[rel="canonical"]`, `<link rel="canonical"/>`).SetAttr("href", m.Canonical)
	}
}

func ensure(head *goquery.Selection, selector, markup string) *goquery.Selection {
	sel := head.Find(selector)
	if sel.Length() == 0 {
		head.AppendHtml(markup)
		sel = head.Find(selector)
	}
	return sel.First()
}

// Rewrite parses an HTML document from r, applies m and serializes it again.
func Rewrite(r io.Reader, m Meta) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	Apply(doc, m)
	out, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return []byte(out), nil
}
