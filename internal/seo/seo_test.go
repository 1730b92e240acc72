package seo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/nfrund/sitefront/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRobots(t *testing.T) {
	assert.Equal(t, "index, follow", Meta{}.Robots())
	assert.Equal(t, "noindex, follow", Meta{NoIndex: true}.Robots())
	assert.Equal(t, "index, nofollow", Meta{NoFollow: true}.Robots())
	assert.Equal(t, "noindex, nofollow", Meta{NoIndex: true, NoFollow: true}.Robots())
}

func TestFromContent(t *testing.T) {
	t.Run("plain flags", func(t *testing.T) {
		m := FromContent(content.Object{"noindex": true, "nofollow": false, "title": "Careers"}, Meta{})
		assert.Equal(t, "noindex, follow", m.Robots())
		assert.Equal(t, "Careers", m.Title)
	})

	t.Run("yoast fields win", func(t *testing.T) {
		o := content.Object{
			"title": "Page",
			"seo": map[string]any{
				"title":              "Page | Acme",
				"metaDesc":           "About Acme",
				"canonical":          "/about",
				"metaRobotsNoindex":  "noindex",
				"metaRobotsNofollow": "follow",
			},
		}
		m := FromContent(o, Meta{})
		assert.Equal(t, "Page | Acme", m.Title)
		assert.Equal(t, "About Acme", m.Description)
		assert.Equal(t, "/about", m.Canonical)
		assert.True(t, m.NoIndex)
		assert.False(t, m.NoFollow)
	})

	t.Run("nil object uses fallback", func(t *testing.T) {
		fb := Meta{Title: "Sitefront", Description: "desc", Canonical: "http://x/", NoFollow: true}
		assert.Equal(t, fb, FromContent(nil, fb))
	})
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "https://acme.com/jobs/go", Meta{Canonical: "/jobs/go"}.Canonicalize("https://acme.com").Canonical)
	assert.Equal(t, "https://other.com/x", Meta{Canonical: "https://other.com/x"}.Canonicalize("https://acme.com").Canonical)
	assert.Equal(t, "", Meta{}.Canonicalize("https://acme.com").Canonical)
}

func TestRewrite_CreatesMissingTags(t *testing.T) {
	src := `<!DOCTYPE html><html><head></head><body><p>hi</p></body></html>`
	m := FromContent(content.Object{"noindex": true, "nofollow": false}, Meta{
		Title:       "Home",
		Description: "Welcome",
		Canonical:   "https://acme.com/",
	})

	out, err := Rewrite(strings.NewReader(src), m)
	require.NoError(t, err)

	doc := parse(t, out)
	robots, ok := doc.Find(`meta[name="robots"]`).Attr("content")
	assert.True(t, ok, "robots meta tag should be created")
	assert.Equal(t, "noindex, follow", robots)
	assert.Equal(t, "Home", doc.Find("title").Text())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "Welcome", desc)
	href, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "https://acme.com/", href)
	assert.Equal(t, "hi", doc.Find("body p").Text())
}

func TestRewrite_UpdatesExistingTags(t *testing.T) {
	src := `<html><head>
<title>Old</title>
<meta name="robots" content="index, follow">
<meta name="description" content="old desc">
<link rel="canonical" href="http://old/">
</head><body></body></html>`

	out, err := Rewrite(strings.NewReader(src), Meta{Title: "New", Description: "new desc", Canonical: "http://new/", NoFollow: true})
	require.NoError(t, err)

	doc := parse(t, out)
	assert.Equal(t, 1, doc.Find("title").Length())
	assert.Equal(t, "New", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find(`meta[name="robots"]`).Length())
	robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
	assert.Equal(t, "index, nofollow", robots)
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "new desc", desc)
	assert.Equal(t, 1, doc.Find(`link[rel="canonical"]`).Length())
	href, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	assert.Equal(t, "http://new/", href)
}

func TestRewrite_EmptyFieldsKeepExisting(t *testing.T) {
	src := `<html><head><title>Keep</title><meta name="description" content="keep"></head><body></body></html>`

	out, err := Rewrite(strings.NewReader(src), Meta{})
	require.NoError(t, err)

	doc := parse(t, out)
	assert.Equal(t, "Keep", doc.Find("title").Text())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "keep", desc)
	assert.Equal(t, 0, doc.Find(`link[rel="canonical"]`).Length())
	robots, _ := doc.Find(`meta[name="robots"]`).Attr("content")
	assert.Equal(t, "index, follow", robots)
}
