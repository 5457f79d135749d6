package http

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/orbitwatch/backend/internal/logging"
	"github.com/orbitwatch/backend/internal/observability"
	"github.com/orbitwatch/backend/internal/service"
	"github.com/orbitwatch/backend/internal/view"
)

// Leaflet is served from unpkg and tiles from CARTO; everything else is local.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://unpkg.com; " +
	"style-src 'self' https://unpkg.com; " +
	"img-src 'self' data: https://*.basemaps.cartocdn.com https://unpkg.com; " +
	"connect-src 'self'"

// ServerConfig holds everything needed to build the fiber app
type ServerConfig struct {
	Services           *service.Services
	Renderer           *view.Renderer
	Logger             logging.Logger
	Metrics            *observability.Collector // nil disables request metrics and the metrics route
	MetricsPath        string
	AllowOrigins       string
	UpstreamConfigured bool
	AccessLog          io.Writer // defaults to os.Stdout
}

// NewServer builds the fiber app with middleware and routes
func NewServer(cfg ServerConfig) *fiber.App {
	if cfg.Logger == nil {
		cfg.Logger = logging.Noop()
	}
	if cfg.AccessLog == nil {
		cfg.AccessLog = os.Stdout
	}
	if cfg.AllowOrigins == "" {
		cfg.AllowOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:               "Satellite Tracker v1.0",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          ErrorHandler(cfg.Logger),
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(helmet.New(helmet.Config{
		ContentSecurityPolicy:     contentSecurityPolicy,
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestid}\n",
		Output: cfg.AccessLog,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(RequestContext(cfg.Logger))
	if cfg.Metrics != nil {
		app.Use(Metrics(cfg.Metrics))
	}

	handler := NewHandler(cfg.Services, cfg.Renderer, cfg.UpstreamConfigured)
	SetupRoutes(app, handler, cfg.Metrics, cfg.MetricsPath)

	return app
}
