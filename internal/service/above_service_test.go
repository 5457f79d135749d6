package service

import (
	"context"
	"errors"
	"testing"

	"github.com/orbitwatch/backend/internal/domain"
)

func TestGetAbovePassesPayloadThrough(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	obs := domain.Observer{Lat: -33.86, Lng: 151.2}

	resp, err := NewAboveService(api).GetAbove(context.Background(), obs)
	if err != nil {
		t.Fatalf("GetAbove: %v", err)
	}
	if len(resp.Above) != 2 || resp.Info.SatCount != 2 {
		t.Fatalf("payload = %+v", resp)
	}
	if api.aboveCalls[0] != obs {
		t.Fatalf("observer = %+v", api.aboveCalls[0])
	}
	if want := (AboveQuery{ObserverAltM: 0, RadiusDeg: 70, CategoryID: 0}); api.lastQuery != want {
		t.Fatalf("query = %+v, want %+v", api.lastQuery, want)
	}
}

func TestGetAboveFailureHasNoDetail(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.err = errors.New("dial tcp: connection refused")

	_, err := NewAboveService(api).GetAbove(context.Background(), domain.DefaultObserver())
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error, got %v", err)
	}
	if de.Kind != domain.KindUpstream || de.Detail != "" {
		t.Fatalf("error = %+v", de)
	}
}

func TestGetAboveMissingKey(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.configured = false

	_, err := NewAboveService(api).GetAbove(context.Background(), domain.DefaultObserver())
	if domain.KindOf(err) != domain.KindConfiguration {
		t.Fatalf("kind = %v, want configuration", domain.KindOf(err))
	}
	if len(api.aboveCalls) != 0 {
		t.Fatalf("upstream must not be called without a key")
	}
}
