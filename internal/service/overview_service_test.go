package service

import (
	"context"
	"testing"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
)

func newTestOverview(api SatelliteAPI, now time.Time) *OverviewService {
	svc := NewOverviewService(NewPassService(api), NewAboveService(api), nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetOverviewCombinesBothProxies(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.passes.Passes = []domain.PassRecord{
		{StartUTC: 100, EndUTC: 200},
		{StartUTC: 1000, EndUTC: 1600, MaxEl: 42},
		{StartUTC: 5000, EndUTC: 5600},
	}

	ov, err := newTestOverview(api, time.Unix(500, 0)).GetOverview(context.Background(), domain.DefaultObserver())
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.AboveCount != 2 {
		t.Fatalf("aboveCount = %d, want 2", ov.AboveCount)
	}
	if ov.NextPass == nil || ov.NextPass.StartUTC != 1000 {
		t.Fatalf("nextPass = %+v", ov.NextPass)
	}
	if ov.SatID != domain.DefaultSatelliteID || len(ov.Errors) != 0 {
		t.Fatalf("overview = %+v", ov)
	}
	if !ov.Timestamp.Equal(time.Unix(500, 0)) {
		t.Fatalf("timestamp = %v", ov.Timestamp)
	}
}

func TestGetOverviewReportsPartialFailure(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.err = &StatusError{Code: 500}

	ov, err := newTestOverview(api, time.Unix(0, 0)).GetOverview(context.Background(), domain.DefaultObserver())
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if len(ov.Errors) != 2 {
		t.Fatalf("errors = %v, want both halves reported", ov.Errors)
	}
	if ov.NextPass != nil || ov.AboveCount != 0 {
		t.Fatalf("overview = %+v", ov)
	}
}

func TestGetOverviewMissingKey(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.configured = false

	_, err := newTestOverview(api, time.Now()).GetOverview(context.Background(), domain.DefaultObserver())
	if domain.KindOf(err) != domain.KindConfiguration {
		t.Fatalf("kind = %v, want configuration", domain.KindOf(err))
	}
}

func TestNextPassAllEnded(t *testing.T) {
	t.Parallel()

	if p := nextPass([]domain.PassRecord{{EndUTC: 10}}, 20); p != nil {
		t.Fatalf("nextPass = %+v, want nil", p)
	}
}
