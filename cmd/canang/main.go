package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KretovDmitry/canang-orders/internal/application/services"
	"github.com/KretovDmitry/canang-orders/internal/config"
	"github.com/KretovDmitry/canang-orders/internal/infrastructure/db/postgres"
	rest "github.com/KretovDmitry/canang-orders/internal/interface/api/rest/chi"
	"github.com/KretovDmitry/canang-orders/internal/interface/view"
	"github.com/KretovDmitry/canang-orders/internal/metrics"
	"github.com/KretovDmitry/canang-orders/pkg/limiter"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	trmcontext "github.com/avito-tech/go-transaction-manager/trm/v2/context"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Version indicates the current version of the application.
var Version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Server run context.
	serverCtx, serverStopCtx := context.WithCancel(context.Background())
	defer serverStopCtx()

	// Load application configurations.
	cfg := config.MustLoad()

	// Create root logger tagged with server version.
	logger := logger.New(cfg).With(serverCtx, "version", Version)

	defer func() {
		_ = logger.Sync()
	}()

	// Bring the schema up to date before serving.
	if err := postgres.Migrate(cfg.DSN, cfg.MigrationsPath, logger); err != nil {
		return fmt.Errorf("failed to migrate the database: %w", err)
	}

	// Open the store with query logging and check connectivity.
	db, err := postgres.Connect(serverCtx, cfg, logger)
	if err != nil {
		return err
	}

	// Close connection.
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error(err)
		}
	}()

	// Create default transaction manager for database/sql package.
	trManager := manager.Must(
		trmsql.NewDefaultFactory(db),
		manager.WithCtxManager(trmcontext.DefaultManager),
	)

	// Application metrics plus the Go runtime and the connection pool.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "canang"),
	)
	appMetrics := metrics.New(registry)

	orderRepo, err := postgres.NewOrderRepository(db, trmsql.DefaultCtxGetter, logger)
	if err != nil {
		return fmt.Errorf("failed to init order repository: %w", err)
	}

	archiveRepo, err := postgres.NewArchiveRepository(db, trmsql.DefaultCtxGetter, cfg.Archive.LockKey, logger)
	if err != nil {
		return fmt.Errorf("failed to init archive repository: %w", err)
	}

	orderService, err := services.NewOrderService(orderRepo, logger)
	if err != nil {
		return fmt.Errorf("failed to init order service: %w", err)
	}

	revenueService, err := services.NewRevenueService(orderRepo)
	if err != nil {
		return fmt.Errorf("failed to init revenue service: %w", err)
	}

	archiveService, err := services.NewArchiveService(orderRepo, archiveRepo, trManager, appMetrics, logger)
	if err != nil {
		return fmt.Errorf("failed to init archive service: %w", err)
	}

	renderer, err := view.New(cfg.Location())
	if err != nil {
		return fmt.Errorf("failed to init templates: %w", err)
	}

	// Create root router.
	router := rest.InitChi(logger, appMetrics, cfg.HTTPServer.RequestTimeout)

	options := rest.ChiServerOptions{BaseRouter: router}

	rest.NewOrderController(orderService, revenueService, renderer, logger, options)

	// A double click on print and reset must not run it twice in a row.
	resetLimiter := limiter.New(cfg.Archive.ResetInterval, cfg.Archive.ResetBurst)

	rest.NewArchiveController(archiveService, renderer, resetLimiter, logger, options)
	rest.NewHealthController(db, appMetrics.Handler(), logger, options)

	// Build HTTP server.
	hs := &http.Server{
		Addr:              cfg.HTTPServer.Address,
		ReadHeaderTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:       cfg.HTTPServer.IdleTimeout,
		Handler:           router,
	}

	// Graceful shutdown.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT,
			syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)

		signal := <-sig

		logger.With(serverCtx, "signal", signal.String()).
			Infof("Shutting down server with %s timeout",
				cfg.HTTPServer.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(serverCtx, cfg.HTTPServer.ShutdownTimeout)
		defer cancel()

		if err := hs.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("graceful shutdown failed: %s", err)
		}
		serverStopCtx()
	}()

	// Start the HTTP server with graceful shutdown.
	logger.Infof("Server %v is running at %v", Version, cfg.HTTPServer.Address)
	if err = hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("run server failed: %w", err)
	}

	// Wait for server context to be stopped or force exit if timeout exceeded.
	select {
	case <-serverCtx.Done():
	case <-time.After(cfg.HTTPServer.ShutdownTimeout):
		return errors.New("graceful shutdown timed out.. forcing exit")
	}

	return nil
}
