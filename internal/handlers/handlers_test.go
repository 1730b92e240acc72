package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/config"
	"github.com/nfrund/sitefront/internal/contact"
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/domain"
	"github.com/nfrund/sitefront/internal/graphql"
	"github.com/nfrund/sitefront/internal/pagination"
	"github.com/nfrund/sitefront/internal/rendering"
	"github.com/nfrund/sitefront/web/src/templates/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContent struct {
	home    content.Object
	global  content.Object
	page    content.Object
	jobs    content.JobPage
	job     content.Object
	err     error
	jobErr  error
	lastJob pagination.Pagination
}

func (f *fakeContent) Homepage(context.Context) (content.Object, error) { return f.home, f.err }
func (f *fakeContent) Page(context.Context, string) (content.Object, error) {
	return f.page, f.err
}
func (f *fakeContent) Global(context.Context) (content.Object, error) { return f.global, f.err }
func (f *fakeContent) Jobs(_ context.Context, p pagination.Pagination) (content.JobPage, error) {
	f.lastJob = p
	page := f.jobs
	page.Pagination = p
	return page, f.err
}
func (f *fakeContent) Job(context.Context, string) (content.Object, error) {
	return f.job, f.jobErr
}

type fakeSubmitter struct {
	got contact.Submission
	err error
}

func (f *fakeSubmitter) Submit(_ context.Context, s contact.Submission) (contact.Submission, error) {
	f.got = s
	if f.err != nil {
		return s, f.err
	}
	s.ID = "sub-1"
	return s, nil
}

func newSite(fc *fakeContent) *Site {
	return &Site{
		Content:  fc,
		Renderer: rendering.NewUniversalRenderer(),
		Config:   &config.Config{SiteName: "Acme", AppBaseURL: "https://acme.test", JobsPerPage: 12},
	}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	return e
}

func serve(t *testing.T, e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func TestHomeGet(t *testing.T) {
	t.Run("renders content blocks and metadata", func(t *testing.T) {
		fc := &fakeContent{
			global: content.Object{"siteName": "Acme", "tagline": "Software, shipped."},
			home: content.Object{
				"title": "Home",
				"seo":   map[string]any{"title": "Acme | Home", "metaRobotsNoindex": "index"},
				"homepageBlocks": map[string]any{
					"hero": map[string]any{"title": "We build software"},
				},
			},
		}
		e := newEcho()
		e.GET("/", NewHomeHandler(newSite(fc)).HomeGet)

		rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Acme | Home", doc.Find("title").Text())
		assert.Equal(t, "index, follow", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
		assert.Equal(t, "https://acme.test/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
		assert.Equal(t, "We build software", doc.Find(".hero__title").Text())
		assert.Equal(t, components.StatsHeadingPlaceholder, doc.Find(".stats__heading").Text())
	})

	t.Run("backend failure falls back to placeholders", func(t *testing.T) {
		fc := &fakeContent{err: errors.New("connection refused")}
		e := newEcho()
		e.GET("/", NewHomeHandler(newSite(fc)).HomeGet)

		rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, components.HeroTitlePlaceholder, doc.Find(".hero__title").Text())
		assert.Equal(t, "Acme", doc.Find(".site-header__brand").Text())
		assert.Equal(t, "Acme", doc.Find("title").Text())
	})
}

func TestROI(t *testing.T) {
	e := newEcho()
	h := NewROIHandler(newSite(&fakeContent{}))
	e.GET("/roi", h.ROIGet)
	e.GET("/roi/estimate", h.EstimateGet)

	t.Run("page uses defaults", func(t *testing.T) {
		rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/roi", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "10", doc.Find("#roi-team_size").AttrOr("value", ""))
		assert.Contains(t, doc.Find("#"+components.ROIResultID).Text(), "$108,000")
	})

	t.Run("estimate fragment", func(t *testing.T) {
		q := url.Values{"team_size": {"2"}, "hours_per_week": {"5"}, "hourly_rate": {"100"}, "efficiency_gain": {"50"}, "investment": {"0"}}
		rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/roi/estimate?"+q.Encode(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "<html")
		assert.Contains(t, doc.Find("#"+components.ROIResultID).Text(), "$24,000")
	})

	t.Run("invalid input", func(t *testing.T) {
		rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/roi/estimate?team_size=abc", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, doc.Text(), "Check the highlighted fields")

		rec, _ = serve(t, e, httptest.NewRequest(http.MethodGet, "/roi/estimate?efficiency_gain=250", nil))
		assert.Contains(t, rec.Body.String(), "Check the highlighted fields")
	})
}

func TestJobs(t *testing.T) {
	fc := &fakeContent{
		jobs: content.JobPage{
			Jobs:  []content.Object{{"title": "Go Engineer", "slug": "go-engineer"}},
			Total: 30,
		},
		job:    content.Object{"title": "Go Engineer", "content": "<p>Write Go.</p>"},
		jobErr: nil,
	}
	e := newEcho()
	h := NewJobsHandler(newSite(fc))
	e.GET("/jobs", h.ListGet)
	e.GET("/jobs/:slug", h.DetailGet)

	t.Run("listing paginates", func(t *testing.T) {
		rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/jobs?page=2", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2, fc.lastJob.CurrentPage)
		assert.Equal(t, 12, fc.lastJob.Offset)
		assert.Equal(t, "/jobs/go-engineer", doc.Find(".job-card__title a").AttrOr("href", ""))
		assert.Equal(t, "/jobs?page=3", doc.Find(".pagination__next").AttrOr("href", ""))
		assert.Equal(t, "https://acme.test/jobs?page=2", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	})

	t.Run("invalid page is coerced to 1", func(t *testing.T) {
		rec, _ := serve(t, e, httptest.NewRequest(http.MethodGet, "/jobs?page=abc", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, fc.lastJob.CurrentPage)
		assert.Equal(t, 0, fc.lastJob.Offset)
	})

	t.Run("detail", func(t *testing.T) {
		rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/jobs/go-engineer", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Go Engineer", doc.Find(".job__title").Text())
		assert.Equal(t, "Write Go.", doc.Find(".job__body p").Text())
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		fc.jobErr = fmt.Errorf("job %q: %w", "nope", domain.ErrNotFound)
		defer func() { fc.jobErr = nil }()

		rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/jobs/nope", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "404", doc.Find(".error-page__status").Text())
		assert.Equal(t, "noindex, follow", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	})
}

func TestTestWorkingGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Cannot query field \"jobs\" on type \"RootQuery\". Did you mean \"job\"?"}]}`))
	}))
	defer srv.Close()

	e := newEcho()
	h := NewDiagnosticsHandler(newSite(&fakeContent{}), graphql.NewClient(srv.URL), srv.URL)
	e.GET("/test-working", h.TestWorkingGet)

	rec, doc := serve(t, e, httptest.NewRequest(http.MethodGet, "/test-working", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, srv.URL, doc.Find(".diagnostics__endpoint").Text())
	assert.Equal(t, 5, doc.Find(".diagnostics__row").Length())
	assert.Contains(t, doc.Find(".diagnostics__suggestion").First().Text(), `"jobs": did you mean job?`)
	assert.Equal(t, "noindex, nofollow", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
}

func TestContactPost(t *testing.T) {
	form := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Please get in touch about automation."},
	}
	post := func(htmx bool) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		if htmx {
			req.Header.Set("HX-Request", "true")
		}
		return req
	}

	t.Run("htmx success returns the form fragment", func(t *testing.T) {
		sub := &fakeSubmitter{}
		e := newEcho()
		e.POST("/contact", NewContactHandler(newSite(&fakeContent{}), sub).ContactPost)

		rec, doc := serve(t, e, post(true))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ada", sub.got.Name)
		assert.Equal(t, contactThanks, doc.Find(".contact__success").Text())
		assert.Empty(t, doc.Find(`input[name="name"]`).AttrOr("value", ""))
		assert.NotContains(t, rec.Body.String(), "<html")
	})

	t.Run("htmx validation errors keep the values", func(t *testing.T) {
		sub := &fakeSubmitter{err: &contact.ValidationError{Fields: map[string]string{"email": "Please enter a valid email address."}}}
		e := newEcho()
		e.POST("/contact", NewContactHandler(newSite(&fakeContent{}), sub).ContactPost)

		rec, doc := serve(t, e, post(true))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ada", doc.Find(`input[name="name"]`).AttrOr("value", ""))
		assert.Equal(t, "Please enter a valid email address.", doc.Find(".field-error").Text())
	})

	t.Run("plain post redirects with a flash", func(t *testing.T) {
		e := newEcho()
		e.POST("/contact", NewContactHandler(newSite(&fakeContent{}), &fakeSubmitter{}).ContactPost)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, post(false))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#"+components.ContactFormID, rec.Header().Get(echo.HeaderLocation))
		assert.NotEmpty(t, rec.Header().Get("Set-Cookie"))
	})

	t.Run("submit failure shows a form-level error", func(t *testing.T) {
		e := newEcho()
		e.POST("/contact", NewContactHandler(newSite(&fakeContent{}), &fakeSubmitter{err: errors.New("bus closed")}).ContactPost)

		_, doc := serve(t, e, post(true))
		assert.Equal(t, contactFailed, doc.Find(".field-error").Text())
	})
}
