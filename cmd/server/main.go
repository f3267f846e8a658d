// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http"
	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/links"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/config"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/health"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/logging"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	productServiceName = "product-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	stores, err := openBackends(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening stores: %w", err)
	}
	logger.Info("backends opened",
		slog.String("store", cfg.Store.Backend),
		slog.String("links", cfg.Links.Backend),
		slog.Any("redis", cfg.Redis),
	)
	defer func() {
		if err := stores.Close(); err != nil {
			logger.Error("closing stores", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	stores.provide(injector)
	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.ProductClient](injector))
	for _, checker := range stores.checkers {
		registry.Register(checker)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, productServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ProductClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewProductClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*saga.Executor, error) {
		return saga.NewExecutor(logger,
			saga.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
			saga.WithReconciliationLog(do.MustInvoke[ports.ReconciliationLog](i)),
			saga.WithCompensationTimeout(cfg.Saga.CompensationTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (app.Deps, error) {
		return app.Deps{
			Registry: links.NewRegistry(link.CatalogSchema(), do.MustInvoke[ports.LinkStore](i), logger),
			Products: do.MustInvoke[*acl.ProductClient](i),
			Exec:     do.MustInvoke[*saga.Executor](i),
			Workers:  cfg.Saga.SnapshotWorkers,
			Logger:   logger,
		}, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	registerHandlers(injector)

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Brands:         do.MustInvoke[*handlers.BrandHandler](i),
			Tags:           do.MustInvoke[*handlers.TagHandler](i),
			Collections:    do.MustInvoke[*handlers.CollectionHandler](i),
			Menus:          do.MustInvoke[*handlers.MenuHandler](i),
			Reconciliation: do.MustInvoke[*handlers.ReconciliationHandler](i),
			Health:         do.MustInvoke[*handlers.HealthHandler](i),
		}, middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		)), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

func registerHandlers(injector *do.RootScope) {
	do.Provide(injector, func(i do.Injector) (*handlers.BrandHandler, error) {
		deps := do.MustInvoke[app.Deps](i)
		store := do.MustInvoke[ports.EntityStore[catalog.Brand]](i)
		return handlers.NewBrandHandler(app.NewBrandService(store, deps)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TagHandler, error) {
		deps := do.MustInvoke[app.Deps](i)
		store := do.MustInvoke[ports.EntityStore[catalog.Tag]](i)
		return handlers.NewTagHandler(app.NewTagService(store, deps)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CollectionHandler, error) {
		svc := app.NewCollectionService(
			do.MustInvoke[ports.EntityStore[catalog.Collection]](i),
			do.MustInvoke[ports.EntityStore[catalog.CollectionTab]](i),
			do.MustInvoke[ports.EntityStore[catalog.CollectionItem]](i),
			do.MustInvoke[app.Deps](i),
		)
		return handlers.NewCollectionHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.MenuHandler, error) {
		svc := app.NewMenuService(
			do.MustInvoke[ports.EntityStore[catalog.Menu]](i),
			do.MustInvoke[ports.EntityStore[catalog.MenuItem]](i),
			do.MustInvoke[app.Deps](i),
		)
		return handlers.NewMenuHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ReconciliationHandler, error) {
		logger := do.MustInvoke[*slog.Logger](i)
		svc := app.NewReconciliationService(do.MustInvoke[ports.ReconciliationLog](i), logger)
		return handlers.NewReconciliationHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})
}
