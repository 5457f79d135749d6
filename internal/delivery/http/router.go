package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/orbitwatch/backend/internal/observability"
	"github.com/orbitwatch/backend/internal/view"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, handler *Handler, metrics *observability.Collector, metricsPath string) {
	// Health check
	app.Get("/health", handler.HealthCheck)

	if metrics != nil && metricsPath != "" {
		app.Get(metricsPath, adaptor.HTTPHandler(metrics.Handler()))
	}

	// Proxy endpoints
	api := app.Group("/api")
	{
		api.Get("/passes", handler.GetPasses)
		api.Get("/satellites", handler.GetSatellites)
		api.Get("/tle", handler.GetTLE)
		api.Get("/catalog", handler.GetCatalog)
		api.Get("/overview", handler.GetOverview)
	}

	// Pages
	app.Get("/", handler.HomePage)
	app.Get("/live-map", handler.LiveMapPage)
	app.Get("/passes", handler.PassesPage)
	app.Get("/about", handler.AboutPage)

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   nethttp.FS(view.Static()),
		MaxAge: 3600,
	}))
}
