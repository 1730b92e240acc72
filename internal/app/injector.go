// Package app wires the application's services into one injector.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/sitefront/internal/config"
	"github.com/nfrund/sitefront/internal/contact"
	"github.com/nfrund/sitefront/internal/content"
	"github.com/nfrund/sitefront/internal/email"
	"github.com/nfrund/sitefront/internal/graphql"
	"github.com/nfrund/sitefront/internal/pubsub"
	"github.com/nfrund/sitefront/internal/rendering"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/do/v2"
)

// NewInjector registers every service. Services are built lazily on first
// use and each is a singleton, so the whole process shares one GraphQL
// client.
func NewInjector(cfg config.Provider, logger *slog.Logger) *do.RootScope {
	if logger == nil {
		logger = slog.Default()
	}
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)

	do.Provide(i, func(do.Injector) (*prometheus.Registry, error) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return reg, nil
	})

	do.Provide(i, func(i do.Injector) (*graphql.Client, error) {
		reg := do.MustInvoke[*prometheus.Registry](i)
		return graphql.NewClient(cfg.GetGraphQLEndpoint(),
			graphql.WithMetrics(graphql.NewMetrics(reg)),
			graphql.WithLogger(logger),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*content.Repository, error) {
		return content.NewRepository(do.MustInvoke[*graphql.Client](i), logger), nil
	})

	do.Provide(i, func(do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	do.Provide(i, func(do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(logger), nil
	})

	do.Provide(i, func(do.Injector) (email.Sender, error) {
		return email.NewSender(cfg, logger)
	})

	do.Provide(i, func(i do.Injector) (*contact.Service, error) {
		bus := do.MustInvoke[*pubsub.WatermillBridge](i)
		sender, err := do.Invoke[email.Sender](i)
		if err != nil {
			return nil, err
		}
		return contact.NewService(bus, bus, sender, cfg.GetContactRecipient(), logger), nil
	})

	return i
}

// Services is the resolved set the HTTP server and CLI depend on.
type Services struct {
	Config   config.Provider
	Logger   *slog.Logger
	Registry *prometheus.Registry
	GraphQL  *graphql.Client
	Content  *content.Repository
	Renderer rendering.Renderer
	Contact  *contact.Service
}

// Resolve builds every service. It fails on the first provider error.
func Resolve(i do.Injector) (*Services, error) {
	s := &Services{
		Config: do.MustInvoke[config.Provider](i),
		Logger: do.MustInvoke[*slog.Logger](i),
	}
	var err error
	if s.Registry, err = do.Invoke[*prometheus.Registry](i); err != nil {
		return nil, fmt.Errorf("metrics registry: %w", err)
	}
	if s.GraphQL, err = do.Invoke[*graphql.Client](i); err != nil {
		return nil, fmt.Errorf("graphql client: %w", err)
	}
	if s.Content, err = do.Invoke[*content.Repository](i); err != nil {
		return nil, fmt.Errorf("content repository: %w", err)
	}
	if s.Renderer, err = do.Invoke[rendering.Renderer](i); err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	if s.Contact, err = do.Invoke[*contact.Service](i); err != nil {
		return nil, fmt.Errorf("contact service: %w", err)
	}
	return s, nil
}

// Shutdown closes every service that holds resources.
func Shutdown(ctx context.Context, i *do.RootScope) error {
	report := i.ShutdownWithContext(ctx)
	if report != nil && !report.Succeed {
		return report
	}
	return nil
}
