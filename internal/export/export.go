// Package export renders the site into static files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"

	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/pagination"
	"github.com/nfrund/sitefront/internal/storage"
)

// StaticRoutes are exported on every run.
var StaticRoutes = []string{"/", "/roi", "/jobs"}

// Report summarizes an export run.
type Report struct {
	Written []string
	Skipped map[string]int // route -> status code
}

// Exporter requests each route from the site's HTTP handler and stores the
// response as <route>/index.html.
type Exporter struct {
	store   storage.Store
	handler http.Handler
	logger  *slog.Logger
}

// New creates an Exporter.
func New(store storage.Store, handler http.Handler, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{store: store, handler: handler, logger: logger}
}

// FilePath maps a route to the file it is stored in.
func FilePath(route string) string {
	route = strings.Trim(path.Clean("/"+route), "/")
	if route == "" {
		return "index.html"
	}
	return route + "/index.html"
}

// Export writes every route. Routes that do not answer 200 are skipped and
// reported; storage failures abort the run.
func (x *Exporter) Export(ctx context.Context, routes []string) (*Report, error) {
	report := &Report{Skipped: map[string]int{}}
	for _, route := range routes {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		x.handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			x.logger.Warn("Skipping route", "route", route, "status", rec.Code)
			report.Skipped[route] = rec.Code
			continue
		}
		file := FilePath(route)
		if _, err := x.store.Save(ctx, file, rec.Body); err != nil {
			return report, fmt.Errorf("failed to write %s: %w", file, err)
		}
		x.logger.Info("Exported route", "route", route, "file", file)
		report.Written = append(report.Written, file)
	}
	return report, nil
}

// CopyAssets copies every file in assets under prefix.
func (x *Exporter) CopyAssets(ctx context.Context, assets fs.FS, prefix string) (int, error) {
	n := 0
	err := fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return err
		}
		if _, err := x.store.Save(ctx, path.Join(prefix, p), bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", p, err)
		}
		n++
		return nil
	})
	return n, err
}

// JobLister is the part of the content repository the exporter needs.
type JobLister interface {
	Jobs(ctx context.Context, p pagination.Pagination) (content.JobPage, error)
}

// maxJobPages guards against a backend that always reports more.
const maxJobPages = 100

// JobRoutes pages through every job listing and returns /jobs/<slug> for
// each posting.
func JobRoutes(ctx context.Context, jobs JobLister, perPage int) ([]string, error) {
	var routes []string
	for n := 1; n <= maxJobPages; n++ {
		p := pagination.FromSearchParams(fmt.Sprint(n), perPage)
		page, err := jobs.Jobs(ctx, p)
		if err != nil {
			return routes, err
		}
		for _, job := range page.Jobs {
			if slug := job.String("slug"); slug != "" {
				routes = append(routes, "/jobs/"+slug)
			}
		}
		more := page.HasMore
		if page.Total >= 0 {
			more = p.Offset+len(page.Jobs) < page.Total
		}
		if !more || len(page.Jobs) == 0 {
			break
		}
	}
	return routes, nil
}
