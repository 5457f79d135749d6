package main

import (
	"fmt"
	"io"
	"time"

	"github.com/orbitwatch/backend/internal/client"
	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/view"
)

func printCatalog(w io.Writer, cat client.Catalog) {
	fmt.Fprintf(w, "%-8s %-36s %s\n", "ID", "NAME", "CATEGORY")
	for _, e := range cat.Satellites {
		marker := ""
		if e.ID == cat.DefaultSatID {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%-8d %-36s %s%s\n", e.ID, e.Name, e.Category, marker)
	}
}

func printPasses(w io.Writer, resp domain.PassesResponse, loc *time.Location) {
	name := resp.SatelliteInfo.Name
	if name == "" {
		name = resp.Info.SatName
	}
	fmt.Fprintf(w, "%s flyovers (%d)\n", name, len(resp.Passes))
	if len(resp.Passes) == 0 {
		fmt.Fprintln(w, "No visible passes in the next 10 days")
		return
	}

	fmt.Fprintf(w, "%-3s %-11s %-9s %-9s %-14s %-8s %-8s %-5s %s\n",
		"#", "DATE", "START", "PEAK", "DIRECTION", "MAX EL", "DURATION", "MAG", "QUALITY")
	for i, p := range resp.Passes {
		c := view.NewPassCard(i+1, p, name, loc)
		dir := c.Start.Glyph + " " + c.Start.Compass + " > " + c.End.Compass
		fmt.Fprintf(w, "%-3d %-11s %-9s %-9s %-14s %-8s %-8s %-5s %s\n",
			c.Number, c.Date, c.StartTime, c.PeakTime, dir, c.Peak.Elevation, c.Duration, c.Magnitude, c.Quality)
	}
}

func printAbove(w io.Writer, obs domain.Observer, resp domain.AboveResponse) {
	m := view.NewLiveMap(obs, "", resp, nil, time.Now())
	fmt.Fprintf(w, "%d satellites above %.4f,%.4f at %s\n", len(m.Markers), obs.Lat, obs.Lng, m.UpdatedAt)
	if len(m.Markers) == 0 {
		return
	}
	fmt.Fprintf(w, "%-8s %-28s %-9s %-10s %-9s %s\n", "ID", "NAME", "LAT", "LNG", "ALT KM", "DIST KM")
	for _, s := range m.Markers {
		fmt.Fprintf(w, "%-8d %-28s %-9.3f %-10.3f %-9.1f %.1f\n", s.ID, s.Name, s.Lat, s.Lng, s.AltitudeKm, s.DistanceKm)
	}
}
