package http

import (
	"bytes"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/logging"
	"github.com/orbitwatch/backend/internal/service"
	"github.com/orbitwatch/backend/internal/view"
)

// location is the observer a page renders for
type location struct {
	observer domain.Observer
	located  string // "" when the browser supplied a position
	pending  bool   // geolocation has not run yet
	zone     *time.Location
	query    template.URL
}

// locate resolves the observer from lat/lng/located/tz query values. A page
// with none of them is pending: the browser still has to report a position.
func locate(c *fiber.Ctx) location {
	loc := location{observer: domain.DefaultObserver(), zone: time.UTC}
	if tz := c.Query("tz"); tz != "" {
		if z, err := time.LoadLocation(tz); err == nil {
			loc.zone = z
		}
	}

	rawLat, rawLng, reason := c.Query("lat"), c.Query("lng"), c.Query("located")
	switch {
	case rawLat == "" && rawLng == "" && reason == "":
		loc.pending = true
		return loc
	case reason != "":
		loc.located = reason
	default:
		obs, err := domain.ParseObserver(rawLat, rawLng)
		if err != nil {
			loc.located = domain.LocationInvalid
		} else {
			loc.observer = obs
		}
	}

	loc.query = view.LocationQuery(loc.observer, loc.located, loc.zone)
	return loc
}

// HomePage renders the landing page with the sky summary
func (h *Handler) HomePage(c *fiber.Ctx) error {
	loc := locate(c)
	page := view.Page{Title: "Home", Pending: loc.pending, Query: loc.query}
	if !loc.pending {
		ov, err := h.services.Overview.GetOverview(c.UserContext(), loc.observer)
		page.Data = view.NewHomePage(loc.observer, loc.located, ov, err, loc.zone)
	}
	return h.render(c, view.PageHome, page)
}

// LiveMapPage renders satellites currently overhead on a map
func (h *Handler) LiveMapPage(c *fiber.Ctx) error {
	loc := locate(c)
	page := view.Page{Title: "Live Map", Pending: loc.pending, Query: loc.query}
	if !loc.pending {
		above, err := h.services.Above.GetAbove(c.UserContext(), loc.observer)
		page.Data = view.NewLiveMap(loc.observer, loc.located, above, err, time.Now())
	}
	return h.render(c, view.PageLiveMap, page)
}

// PassesPage renders upcoming passes of the selected satellite
func (h *Handler) PassesPage(c *fiber.Ctx) error {
	loc := locate(c)
	page := view.Page{Title: "Satellite Passes", Pending: loc.pending, Query: loc.query}
	if !loc.pending {
		rawSatID := c.Query("satId")
		resp, err := h.services.Passes.GetPasses(c.UserContext(), service.PassQuery{
			Observer: loc.observer,
			SatID:    rawSatID,
		})
		if err != nil {
			resp.SelectedSatID = domain.ResolveSatelliteID(rawSatID)
		}
		page.Data = view.NewPassesPage(loc.observer, loc.located, resp, err, loc.zone)
	}
	return h.render(c, view.PagePasses, page)
}

// AboutPage renders the project description
func (h *Handler) AboutPage(c *fiber.Ctx) error {
	return h.render(c, view.PageAbout, view.Page{Title: "About", Data: domain.Catalog()})
}

func (h *Handler) render(c *fiber.Ctx, name string, page view.Page) error {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, page); err != nil {
		logging.FromContext(c.UserContext(), logging.Noop()).Error(c.UserContext(), "page render failed",
			logging.String("page", name),
			logging.Err(err),
		)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render page")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
