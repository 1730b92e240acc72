package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/app"
	"github.com/nfrund/sitefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Capture slog output.
	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e, nil)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")
	// A real stack trace points back at the runtime and at this file.
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/server_test.go")
}

// backend fakes the WordPress GraphQL endpoint, answering by operation name.
func backend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		body := buf.String()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.Contains(body, "query Homepage"):
			_, _ = w.Write([]byte(`{"data":{"page":{"title":"Home","homepageBlocks":{"hero":{"title":"Hello from the CMS"}}}}}`))
		case strings.Contains(body, "query GlobalOptions"):
			_, _ = w.Write([]byte(`{"data":{"generalSettings":{"title":"Acme","description":"We ship."}}}`))
		case strings.Contains(body, "query JobBySlug"):
			_, _ = w.Write([]byte(`{"data":{"job":null}}`))
		default:
			_, _ = w.Write([]byte(`{"data":{}}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cms := backend(t)
	cfg := config.FromEnv(func(k string) string {
		switch k {
		case "NEXT_PUBLIC_WORDPRESS_GRAPHQL_ENDPOINT":
			return cms.URL
		case "SESSION_SECRET":
			return "test-secret"
		}
		return ""
	})
	i := app.NewInjector(cfg, nil)
	t.Cleanup(func() { _ = app.Shutdown(context.Background(), i) })

	services, err := app.Resolve(i)
	require.NoError(t, err)

	s := New(services)
	s.RegisterRoutes()
	return s
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t)

	t.Run("home", func(t *testing.T) {
		rec := get(s, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		doc, err := goquery.NewDocumentFromReader(rec.Body)
		require.NoError(t, err)
		assert.Equal(t, "Hello from the CMS", doc.Find(".hero__title").Text())
		assert.Equal(t, "Acme", doc.Find(".site-header__brand").Text())
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("health", func(t *testing.T) {
		rec := get(s, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("metrics include graphql requests", func(t *testing.T) {
		rec := get(s, "/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "sitefront_graphql_requests_total")
	})

	t.Run("static assets are embedded", func(t *testing.T) {
		rec := get(s, "/static/css/site.css")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown job renders a 404 page", func(t *testing.T) {
		rec := get(s, "/jobs/does-not-exist")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "404")
	})

	t.Run("unknown route renders the error page", func(t *testing.T) {
		rec := get(s, "/nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "We couldn&#39;t find that page.")
	})

	t.Run("roi estimate fragment", func(t *testing.T) {
		rec := get(s, "/roi/estimate?team_size=1&hours_per_week=5&hourly_rate=100&efficiency_gain=50&investment=0")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "$12,000")
	})

	t.Run("contact post redirects", func(t *testing.T) {
		form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Tell me more about your services."}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx, "127.0.0.1:0") }()
	cancel()

	assert.NoError(t, <-done)
}
