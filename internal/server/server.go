package server

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/sitefront/internal/app"
	"github.com/nfrund/sitefront/internal/handlers"
	"github.com/nfrund/sitefront/internal/middleware"
	"github.com/nfrund/sitefront/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	services *app.Services
}

// New creates the echo instance with the middleware chain, renderer and
// error handling in place. Routes are added by RegisterRoutes.
func New(services *app.Services) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = services.Renderer
	e.Validator = handlers.NewValidator()

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())
	e.Use(echomw.Recover())
	e.Use(echomw.Secure())

	store := sessions.NewCookieStore([]byte(services.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s := &Server{E: e, services: services}
	setupErrorHandling(e, services)
	return s
}
