package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orbitwatch/backend/internal/domain"
)

func TestPassesSendsObserverAndSatellite(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/passes" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"info":{"satid":20580,"passescount":1},"passes":[{"maxEl":61.2,"mag":1.5}],"satelliteInfo":{"name":"Hubble Space Telescope","category":"Observatory"},"selectedSatId":20580}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL+"/").Passes(context.Background(), domain.Observer{Lat: 51.5, Lng: -0.12}, 20580)
	if err != nil {
		t.Fatalf("Passes: %v", err)
	}
	if gotQuery != "lat=51.5&lng=-0.12&satId=20580" {
		t.Fatalf("query = %q", gotQuery)
	}
	if resp.SelectedSatID != 20580 || resp.SatelliteInfo.Category != domain.CategoryObservatory || len(resp.Passes) != 1 {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestErrorIncludesStatusAndBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to fetch pass data","details":"API responded with status: 503"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Passes(context.Background(), domain.DefaultObserver(), 0)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != 500 || apiErr.Message != "Failed to fetch pass data" || apiErr.Details != "API responded with status: 503" {
		t.Fatalf("apiErr = %+v", apiErr)
	}
	if want := "client: status 500: Failed to fetch pass data (API responded with status: 503)"; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNonJSONErrorKeepsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).TLE(context.Background(), 25544)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadGateway || apiErr.Body != "bad gateway\n" {
		t.Fatalf("err = %#v", err)
	}
	if err.Error() != "client: status 502: bad gateway" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestCatalogAndHealth(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/catalog", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"satellites":[{"id":25544,"name":"International Space Station (ISS)","category":"Space Station"}],"defaultSatId":25544}`))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","service":"satellite-tracker","version":"1.0.0","upstreamConfigured":true}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	cat, err := c.Catalog(context.Background())
	if err != nil || cat.DefaultSatID != 25544 || len(cat.Satellites) != 1 {
		t.Fatalf("Catalog = %+v, %v", cat, err)
	}
	h, err := c.Health(context.Background())
	if err != nil || !h.UpstreamConfigured || h.Status != "ok" {
		t.Fatalf("Health = %+v, %v", h, err)
	}
}

func TestTLEOmitsZeroID(t *testing.T) {
	t.Parallel()

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"line1":"1 x","line2":"2 y"}`))
	}))
	defer srv.Close()

	tle, err := New(srv.URL).TLE(context.Background(), 0)
	if err != nil || tle.Line1 != "1 x" || tle.Line2 != "2 y" {
		t.Fatalf("TLE = %+v, %v", tle, err)
	}
	if gotQuery != "" {
		t.Fatalf("query = %q, want none", gotQuery)
	}
}
