package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/service"
	"github.com/orbitwatch/backend/internal/view"
)

const (
	serviceName    = "satellite-tracker"
	serviceVersion = "1.0.0"
)

// Handler contains all HTTP handlers
type Handler struct {
	services           *service.Services
	renderer           *view.Renderer
	upstreamConfigured bool
}

// NewHandler creates a new handler
func NewHandler(services *service.Services, renderer *view.Renderer, upstreamConfigured bool) *Handler {
	return &Handler{
		services:           services,
		renderer:           renderer,
		upstreamConfigured: upstreamConfigured,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":             "ok",
		"service":            serviceName,
		"version":            serviceVersion,
		"upstreamConfigured": h.upstreamConfigured,
	})
}

// GetPasses returns visual passes for the requested satellite
func (h *Handler) GetPasses(c *fiber.Ctx) error {
	obs, err := domain.ParseObserver(c.Query("lat"), c.Query("lng"))
	if err != nil {
		return err
	}

	resp, err := h.services.Passes.GetPasses(c.UserContext(), service.PassQuery{
		Observer: obs,
		SatID:    c.Query("satId"),
	})
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetSatellites returns satellites currently above the observer
func (h *Handler) GetSatellites(c *fiber.Ctx) error {
	obs, err := domain.ParseObserver(c.Query("lat"), c.Query("lng"))
	if err != nil {
		return err
	}

	resp, err := h.services.Above.GetAbove(c.UserContext(), obs)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetTLE returns the two element lines of a catalogued satellite
func (h *Handler) GetTLE(c *fiber.Ctx) error {
	tle, err := h.services.TLE.GetTLE(c.UserContext(), c.Query("satId"))
	if err != nil {
		return err
	}

	return c.JSON(tle)
}

// GetCatalog lists the selectable satellites
func (h *Handler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"satellites":   domain.Catalog(),
		"defaultSatId": domain.DefaultSatelliteID,
	})
}

// GetOverview returns the sky summary for the observer
func (h *Handler) GetOverview(c *fiber.Ctx) error {
	obs, err := domain.ParseObserver(c.Query("lat"), c.Query("lng"))
	if err != nil {
		return err
	}

	ov, err := h.services.Overview.GetOverview(c.UserContext(), obs)
	if err != nil {
		return err
	}

	return c.JSON(ov)
}
