package view

import (
	"fmt"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
)

const (
	unknownSatellite  = "Unknown Satellite"
	passesLoadFailed  = "Failed to load satellite passes"
	visibleThroughout = "Visible throughout pass"
)

// Direction is one end point of a pass as shown on a card
type Direction struct {
	Compass   string
	Glyph     string
	Elevation string
}

// PassCard is the display model of a single pass
type PassCard struct {
	Number      int
	SatName     string
	Date        string
	StartTime   string
	PeakTime    string
	Start       Direction
	Peak        Direction
	End         Direction
	Duration    string
	Magnitude   string
	Quality     Quality
	QualityTone string
	Visibility  string
}

// SatelliteOption is one entry of the satellite selector
type SatelliteOption struct {
	ID       int
	Label    string
	Selected bool
}

// PassesPage is the display model of the passes view
type PassesPage struct {
	Observer      domain.Observer
	Located       bool
	LocatedReason string
	TimeZone      string
	Warning       string
	Error         string
	SelectedSatID int
	Satellite     domain.SatelliteInfo
	Subtitle      string
	HeaderTone    string
	Options       []SatelliteOption
	Cards         []PassCard
}

// NewPassesPage builds the passes view. located is the geolocation outcome
// reported by the browser ("" when a position was supplied). A non-nil
// fetchErr replaces the cards with an error banner.
func NewPassesPage(obs domain.Observer, located string, resp domain.PassesResponse, fetchErr error, loc *time.Location) PassesPage {
	selected := resp.SelectedSatID
	if !domain.IsCatalogued(selected) {
		selected = domain.DefaultSatelliteID
	}

	page := PassesPage{
		Observer:      obs,
		Located:       located == "",
		LocatedReason: located,
		SelectedSatID: selected,
		Subtitle:      "Upcoming satellite flyovers",
		HeaderTone:    "cat-neutral",
		Options:       satelliteOptions(selected),
		Cards:         []PassCard{},
	}
	if loc != nil && loc != time.UTC {
		page.TimeZone = loc.String()
	}
	if w := domain.LocationWarning(located); w != nil {
		page.Warning = w.Message
	}
	if fetchErr != nil {
		page.Error = passesLoadFailed
		return page
	}

	page.Satellite = resp.SatelliteInfo
	if resp.SatelliteInfo.Name != "" {
		page.Subtitle = resp.SatelliteInfo.Name + " flyovers"
		page.HeaderTone = CategoryTone(resp.SatelliteInfo.Category)
	}

	fallbackName := resp.SatelliteInfo.Name
	for i, p := range resp.Passes {
		page.Cards = append(page.Cards, NewPassCard(i+1, p, fallbackName, loc))
	}
	return page
}

// NewPassCard formats pass number n. fallbackName is used when the pass itself
// carries no satellite name.
func NewPassCard(n int, p domain.PassRecord, fallbackName string, loc *time.Location) PassCard {
	name := p.SatName
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		name = unknownSatellite
	}

	start := FormatPassTime(p.StartUTC, loc)
	peak := FormatPassTime(p.MaxUTC, loc)
	quality := Classify(p.MaxEl, p.Mag)

	visibility := visibleThroughout
	if p.StartVisibility != nil {
		visibility = "Visible from " + FormatPassTime(*p.StartVisibility, loc).Time
	}

	return PassCard{
		Number:      n,
		SatName:     name,
		Date:        start.Date,
		StartTime:   start.Time,
		PeakTime:    peak.Time,
		Start:       direction(p.StartAzCompass, p.StartEl),
		Peak:        direction(p.MaxAzCompass, p.MaxEl),
		End:         direction(p.EndAzCompass, p.EndEl),
		Duration:    FormatDuration(p.Duration),
		Magnitude:   fmt.Sprintf("%.1f", p.Mag),
		Quality:     quality,
		QualityTone: quality.Tone(),
		Visibility:  visibility,
	}
}

func direction(compass string, el float64) Direction {
	return Direction{Compass: compass, Glyph: DirectionGlyph(compass), Elevation: FormatElevation(el)}
}

func satelliteOptions(selected int) []SatelliteOption {
	entries := domain.Catalog()
	opts := make([]SatelliteOption, 0, len(entries))
	for _, e := range entries {
		opts = append(opts, SatelliteOption{
			ID:       e.ID,
			Label:    fmt.Sprintf("%s (%s)", e.Name, e.Category),
			Selected: e.ID == selected,
		})
	}
	return opts
}
