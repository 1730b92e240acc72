// Package queries holds the static GraphQL documents sent to the WordPress
// backend. Nothing here parses or validates responses.
package queries

const seoFields = `
    seo {
      title
      metaDesc
      canonical
      metaRobotsNoindex
      metaRobotsNofollow
    }`

// Homepage requests the content blocks of the front page.
const Homepage = `query Homepage {
  page(id: "/", idType: URI) {
    title
    uri` + seoFields + `
    homepageBlocks {
      hero {
        title
        subtitle
        image { sourceUrl altText }
        cta { title url }
      }
      stats {
        heading
        items { value label suffix }
      }
      founder {
        name
        role
        quote
        image { sourceUrl altText }
      }
      cards {
        heading
        items { title text link { title url } }
      }
      contact {
        heading
        intro
        submitLabel
      }
      cta {
        title
        buttonLabel
        buttonUrl
      }
    }
  }
}`

// JobListings requests one page of job postings.
// Variables: offset (Int), size (Int).
const JobListings = `query JobListings($offset: Int!, $size: Int!) {
  jobs(where: { offsetPagination: { offset: $offset, size: $size } }) {
    pageInfo {
      offsetPagination { total hasMore hasPrevious }
    }
    nodes {
      title
      slug
      date
      excerpt
      jobFields { location department employmentType }
    }
  }
}`

// JobBySlug requests a single job posting.
// Variables: slug (ID).
const JobBySlug = `query JobBySlug($slug: ID!) {
  job(id: $slug, idType: SLUG) {
    title
    slug
    date
    content
    uri` + seoFields + `
    jobFields { location department employmentType applyUrl }
  }
}`

// GlobalOptions requests content shared by every page.
const GlobalOptions = `query GlobalOptions {
  generalSettings {
    title
    description
    url
  }
  globalOptions {
    siteSettings {
      siteName
      tagline
      copyright
      contactEmail
      menu { label url }
      social { label url }
    }
  }
}`

// PageByURI requests a generic page and its section blocks.
// Variables: uri (ID).
const PageByURI = `query PageByURI($uri: ID!) {
  page(id: $uri, idType: URI) {
    title
    content
    uri` + seoFields + `
    pageBlocks {
      hero {
        title
        subtitle
        image { sourceUrl altText }
        cta { title url }
      }
      stats {
        heading
        items { value label suffix }
      }
      cta {
        title
        buttonLabel
        buttonUrl
      }
    }
  }
}`

// Named pairs a query with the variables it needs for a smoke run.
type Named struct {
	Name      string
	Query     string
	Variables map[string]any
}

// All returns every query with representative variables.
func All() []Named {
	return []Named{
		{Name: "homepage", Query: Homepage},
		{Name: "jobs", Query: JobListings, Variables: map[string]any{"offset": 0, "size": 12}},
		{Name: "job", Query: JobBySlug, Variables: map[string]any{"slug": "example"}},
		{Name: "global", Query: GlobalOptions},
		{Name: "page", Query: PageByURI, Variables: map[string]any{"uri": "/roi"}},
	}
}

// Lookup finds a named query.
func Lookup(name string) (Named, bool) {
	for _, q := range All() {
		if q.Name == name {
			return q, true
		}
	}
	return Named{}, false
}
