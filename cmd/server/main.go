package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/orbitwatch/backend/internal/config"
	"github.com/orbitwatch/backend/internal/delivery/http"
	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/logging"
	"github.com/orbitwatch/backend/internal/observability"
	"github.com/orbitwatch/backend/internal/service"
	"github.com/orbitwatch/backend/internal/view"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	ctx := context.Background()

	// Tracing
	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: *cfg.Tracing.SampleRatio,
	}, logger)
	if err != nil {
		log.Fatalf("Tracing setup failed: %v", err)
	}

	// Metrics
	var metrics *observability.Collector
	if cfg.MetricsEnabled() {
		metrics, err = observability.NewCollector(nil)
		if err != nil {
			log.Fatalf("Metrics setup failed: %v", err)
		}
		metrics.SetCatalogSize(domain.CatalogSize())
	}

	// Dependency Injection: Upstream + Services
	n2yo := service.NewN2YOClient(
		cfg.Upstream.APIKey,
		cfg.Upstream.BaseURL,
		cfg.Upstream.Timeout,
		service.WithMetrics(metrics),
		service.WithLogger(logger),
	)
	if !n2yo.Configured() {
		logger.Warn(ctx, "N2YO_API_KEY is not set; proxy endpoints will answer with a configuration error")
	}
	services := service.NewServices(n2yo, metrics, logger)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("Template setup failed: %v", err)
	}

	app := http.NewServer(http.ServerConfig{
		Services:           services,
		Renderer:           renderer,
		Logger:             logger,
		Metrics:            metrics,
		MetricsPath:        cfg.Metrics.Path,
		AllowOrigins:       cfg.CORS.AllowOrigins,
		UpstreamConfigured: n2yo.Configured(),
	})

	// Graceful shutdown
	go func() {
		logger.Info(ctx, "server starting",
			logging.String("port", cfg.Port),
			logging.String("env", cfg.Env),
			logging.String("upstream", cfg.Upstream.BaseURL),
		)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down server")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error(ctx, "server forced to shutdown", logging.Err(err))
	}
	observability.ShutdownWithTimeout(ctx, shutdownTracing, logger)
	logger.Info(ctx, "server exited gracefully")
}
