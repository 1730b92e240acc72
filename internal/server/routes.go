package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sitefront/internal/handlers"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	site := &handlers.Site{
		Content:  s.services.Content,
		Renderer: s.services.Renderer,
		Config:   s.services.Config,
	}
	homeHandler := handlers.NewHomeHandler(site)
	roiHandler := handlers.NewROIHandler(site)
	jobsHandler := handlers.NewJobsHandler(site)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(site, s.services.GraphQL, s.services.Config.GetGraphQLEndpoint())
	contactHandler := handlers.NewContactHandler(site, s.services.Contact)
	rateLimiter := middleware.RateLimiter(middleware.DefaultSubmissionsPerMinute)

	s.E.GET("/", homeHandler.HomeGet)

	s.E.GET("/roi", roiHandler.ROIGet)
	s.E.GET("/roi/estimate", roiHandler.EstimateGet)

	s.E.GET("/jobs", jobsHandler.ListGet)
	s.E.GET("/jobs/:slug", jobsHandler.DetailGet)

	s.E.GET("/test-working", diagnosticsHandler.TestWorkingGet)

	s.E.POST("/contact", contactHandler.ContactPost, rateLimiter)

	s.E.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.services.Registry, promhttp.HandlerOpts{})))
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
