package view

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/service"
)

func render(t *testing.T, name string, p Page) string {
	t.Helper()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, name, p); err != nil {
		t.Fatalf("Render(%s): %v", name, err)
	}
	return buf.String()
}

func TestRenderPassesPage(t *testing.T) {
	t.Parallel()

	obs := domain.Observer{Lat: 51.5, Lng: -0.12}
	page := NewPassesPage(obs, "", samplePasses(), nil, time.UTC)
	out := render(t, PagePasses, Page{Title: "Passes", Query: LocationQuery(obs, "", time.UTC), Data: page})

	for _, want := range []string{
		"Hubble Space Telescope flyovers",
		"Pass #1",
		"Visible from 07:09 PM",
		"Excellent",
		`<option value="20580" selected>`,
		`name="lat" value="51.5"`,
		"2 passes found",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("passes page missing %q", want)
		}
	}
}

func TestRenderPendingPageSkipsContent(t *testing.T) {
	t.Parallel()

	out := render(t, PagePasses, Page{Title: "Passes", Pending: true})
	if !strings.Contains(out, "data-locate") {
		t.Fatal("pending page must carry the geolocation hook")
	}
	if strings.Contains(out, "Pass #") {
		t.Fatal("pending page must not render cards")
	}
}

func TestRenderLiveMapEmbedsMarkers(t *testing.T) {
	t.Parallel()

	above := domain.AboveResponse{Above: []domain.SatellitePosition{{ID: 25544, Name: "SPACE STATION </script>", Latitude: 1, Longitude: 2}}}
	obs := domain.DefaultObserver()
	m := NewLiveMap(obs, domain.LocationDenied, above, nil, time.Now())
	out := render(t, PageLiveMap, Page{Title: "Live Map", Query: LocationQuery(obs, domain.LocationDenied, nil), Data: m})

	if !strings.Contains(out, `"id":25544`) {
		t.Fatal("marker JSON missing")
	}
	if strings.Contains(out, "SPACE STATION </script>") {
		t.Fatal("satellite name must be escaped inside the data block")
	}
	if !strings.Contains(out, "Satellites (1)") || !strings.Contains(out, "leaflet.js") {
		t.Fatal("map chrome missing")
	}
	if !strings.Contains(out, `href="/live-map?located=denied"`) {
		t.Fatal("refresh link must keep the location outcome")
	}
}

func TestRenderHomeAndAbout(t *testing.T) {
	t.Parallel()

	pass := domain.PassRecord{StartUTC: 1000, MaxEl: 35, Mag: 2.5}
	info, _ := domain.LookupSatellite(domain.DefaultSatelliteID)
	ov := service.Overview{AboveCount: 7, NextPass: &pass, SatelliteInfo: info, Errors: []string{"Failed to fetch pass data"}}
	home := NewHomePage(domain.DefaultObserver(), "", ov, nil, time.UTC)

	out := render(t, PageHome, Page{Title: "Home", Data: home})
	for _, want := range []string{">7<", "Next International Space Station (ISS) pass", "Good", "Failed to fetch pass data"} {
		if !strings.Contains(out, want) {
			t.Fatalf("home page missing %q", want)
		}
	}

	out = render(t, PageAbout, Page{Title: "About", Data: domain.Catalog()})
	if !strings.Contains(out, "GOES-17") || !strings.Contains(out, "N2YO") {
		t.Fatal("about page missing catalog or credit")
	}
}

func TestRenderUnknownPage(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, "nope", Page{}); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestNewHomePageConfigurationError(t *testing.T) {
	t.Parallel()

	home := NewHomePage(domain.DefaultObserver(), "", service.Overview{}, domain.NewConfigurationError("API key not configured"), nil)
	if home.Error != "API key not configured" {
		t.Fatalf("error = %q", home.Error)
	}
}

func TestLocationQuery(t *testing.T) {
	t.Parallel()

	if got := LocationQuery(domain.Observer{Lat: 1.5, Lng: -2}, "", nil); got != "lat=1.5&lng=-2" {
		t.Fatalf("located query = %q", got)
	}
	if got := LocationQuery(domain.DefaultObserver(), domain.LocationUnsupported, time.UTC); got != "located=unsupported" {
		t.Fatalf("fallback query = %q", got)
	}
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	if got := LocationQuery(domain.Observer{Lat: 35.7, Lng: 139.7}, "", tokyo); got != "lat=35.7&lng=139.7&tz=Asia%2FTokyo" {
		t.Fatalf("tz query = %q", got)
	}
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"app.js", "app.css", "livemap.js"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Fatalf("static %s: %v", name, err)
		}
	}
}
