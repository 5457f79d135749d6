package view

import (
	"time"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/pkg/utils"
)

// Map tiles and zoom levels for the live map
const (
	tileURL         = "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png"
	tileAttribution = `&copy; <a href="https://carto.com/">CARTO</a>`

	zoomLocated  = 5
	zoomFallback = 3

	satellitesLoadFailed = "Failed to fetch satellite data"
)

// Marker is a satellite pin on the live map
type Marker struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	IntDesignator string  `json:"intDesignator"`
	LaunchDate    string  `json:"launchDate"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	AltitudeKm    float64 `json:"altitudeKm"`
	DistanceKm    float64 `json:"distanceKm"`
}

// LiveMap is the display model of the live map view
type LiveMap struct {
	Observer        domain.Observer
	Located         bool
	Warning         string
	Error           string
	Zoom            int
	Markers         []Marker
	UpdatedAt       string
	TileURL         string
	TileAttribution string
}

// NewLiveMap builds the live map from an above payload. A non-nil fetchErr
// yields an error banner and no satellite markers; the observer marker is
// always present.
func NewLiveMap(obs domain.Observer, located string, above domain.AboveResponse, fetchErr error, now time.Time) LiveMap {
	m := LiveMap{
		Observer:        obs,
		Located:         located == "",
		Zoom:            zoomFallback,
		Markers:         []Marker{},
		UpdatedAt:       now.UTC().Format("15:04:05 UTC"),
		TileURL:         tileURL,
		TileAttribution: tileAttribution,
	}
	if m.Located {
		m.Zoom = zoomLocated
	}
	if w := domain.LocationWarning(located); w != nil {
		m.Warning = w.Message
	}
	if fetchErr != nil {
		m.Error = satellitesLoadFailed
		return m
	}

	for _, s := range above.Above {
		m.Markers = append(m.Markers, Marker{
			ID:            s.ID,
			Name:          s.Name,
			IntDesignator: s.IntDesignator,
			LaunchDate:    s.LaunchDate,
			Lat:           s.Latitude,
			Lng:           s.Longitude,
			AltitudeKm:    utils.RoundTo(s.AltitudeKm, 1),
			DistanceKm:    utils.RoundTo(utils.Haversine(obs.Lat, obs.Lng, s.Latitude, s.Longitude), 1),
		})
	}
	return m
}
