package view

import (
	"errors"
	"testing"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
)

func samplePasses() domain.PassesResponse {
	visible := time.Date(2024, time.March, 4, 19, 9, 0, 0, time.UTC).Unix()
	info, _ := domain.LookupSatellite(20580)
	return domain.PassesResponse{
		Info: domain.PassesInfo{SatID: 20580, SatName: "HST", PassesCount: 2},
		Passes: []domain.PassRecord{
			{
				StartAz:         310,
				StartAzCompass:  "NW",
				StartEl:         10.04,
				StartUTC:        time.Date(2024, time.March, 4, 19, 7, 0, 0, time.UTC).Unix(),
				MaxAzCompass:    "N",
				MaxEl:           55.34,
				MaxUTC:          time.Date(2024, time.March, 4, 19, 12, 0, 0, time.UTC).Unix(),
				EndAzCompass:    "E",
				EndEl:           12,
				Mag:             1,
				Duration:        605,
				StartVisibility: &visible,
				SatName:         "HST",
			},
			{MaxEl: 25, Mag: 4, Duration: 59, StartAzCompass: "NNW"},
		},
		SatelliteInfo: info,
		SelectedSatID: 20580,
	}
}

func TestNewPassesPageBuildsCards(t *testing.T) {
	t.Parallel()

	page := NewPassesPage(domain.Observer{Lat: 51.5, Lng: -0.12}, "", samplePasses(), nil, time.UTC)

	if !page.Located || page.Warning != "" || page.Error != "" {
		t.Fatalf("page state = %+v", page)
	}
	if page.Subtitle != "Hubble Space Telescope flyovers" || page.HeaderTone != "cat-observatory" {
		t.Fatalf("header = %q / %q", page.Subtitle, page.HeaderTone)
	}
	if len(page.Cards) != 2 {
		t.Fatalf("cards = %d", len(page.Cards))
	}

	c := page.Cards[0]
	if c.Number != 1 || c.SatName != "HST" || c.Date != "Mon, Mar 4" || c.StartTime != "07:07 PM" || c.PeakTime != "07:12 PM" {
		t.Fatalf("card 1 = %+v", c)
	}
	if c.Start != (Direction{Compass: "NW", Glyph: "↖", Elevation: "10.0°"}) {
		t.Fatalf("start = %+v", c.Start)
	}
	if c.Peak.Elevation != "55.3°" {
		t.Fatalf("peak elevation = %q", c.Peak.Elevation)
	}
	if c.Quality != QualityExcellent || c.Duration != "10m 5s" || c.Magnitude != "1.0" {
		t.Fatalf("card 1 derived = %+v", c)
	}
	if c.Visibility != "Visible from 07:09 PM" {
		t.Fatalf("visibility = %q", c.Visibility)
	}

	c = page.Cards[1]
	if c.SatName != "Hubble Space Telescope" {
		t.Fatalf("card 2 name fallback = %q", c.SatName)
	}
	if c.Visibility != "Visible throughout pass" || c.Quality != QualityFair || c.Start.Glyph != "NNW" {
		t.Fatalf("card 2 = %+v", c)
	}
}

func TestNewPassesPageSelector(t *testing.T) {
	t.Parallel()

	page := NewPassesPage(domain.DefaultObserver(), "", samplePasses(), nil, nil)

	if len(page.Options) != domain.CatalogSize() {
		t.Fatalf("options = %d", len(page.Options))
	}
	selected := 0
	for _, o := range page.Options {
		if o.Selected {
			selected++
			if o.ID != 20580 || o.Label != "Hubble Space Telescope (Observatory)" {
				t.Fatalf("selected option = %+v", o)
			}
		}
	}
	if selected != 1 {
		t.Fatalf("selected options = %d", selected)
	}
}

func TestNewPassesPageErrorAndWarning(t *testing.T) {
	t.Parallel()

	page := NewPassesPage(domain.DefaultObserver(), domain.LocationDenied, domain.PassesResponse{}, errors.New("boom"), nil)

	if page.Located || page.LocatedReason != domain.LocationDenied {
		t.Fatalf("located = %v / %q", page.Located, page.LocatedReason)
	}
	if page.Warning != "Location access denied or unavailable" {
		t.Fatalf("warning = %q", page.Warning)
	}
	if page.Error != "Failed to load satellite passes" || len(page.Cards) != 0 {
		t.Fatalf("error page = %+v", page)
	}
	if page.SelectedSatID != domain.DefaultSatelliteID {
		t.Fatalf("selected = %d", page.SelectedSatID)
	}
}

func TestNewPassCardUnknownSatellite(t *testing.T) {
	t.Parallel()

	if c := NewPassCard(3, domain.PassRecord{}, "", nil); c.SatName != "Unknown Satellite" || c.Number != 3 {
		t.Fatalf("card = %+v", c)
	}
}
