package main

import (
	"context"
	"os"
	"time"

	"github.com/nfrund/sitefront/internal/app"
	"github.com/nfrund/sitefront/internal/config"
	"github.com/nfrund/sitefront/internal/logging"
	"github.com/nfrund/sitefront/internal/server"
)

func main() {
	logger := logging.New()
	cfg := config.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	injector := app.NewInjector(cfg, logger)
	services, err := app.Resolve(injector)
	if err != nil {
		logger.Error("Failed to build services", "error", err)
		os.Exit(1)
	}

	if err := services.Contact.Listen(ctx); err != nil {
		logger.Error("Failed to subscribe to contact submissions", "error", err)
		os.Exit(1)
	}

	s := server.New(services)
	s.RegisterRoutes()

	logger.Info("Using GraphQL backend", "endpoint", cfg.GetGraphQLEndpoint())
	runErr := s.Start(ctx, cfg.GetAddr())
	if runErr != nil {
		logger.Error("Server stopped with an error", "error", runErr)
	}

	cancel()
	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := app.Shutdown(shutdownCtx, injector); err != nil {
		logger.Error("Failed to shut down services", "error", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
