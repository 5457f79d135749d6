package service

import (
	"context"
	"sync"

	"github.com/orbitwatch/backend/internal/domain"
)

const (
	issLine1 = "1 25544U 98067A   08264.51782528 -.00002182  00000-0 -11606-4 0  2927"
	issLine2 = "2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.72125391563537"
)

// fakeAPI is an in-memory SatelliteAPI that records calls
type fakeAPI struct {
	mu sync.Mutex

	configured bool
	passes     domain.PassesResponse
	above      domain.AboveResponse
	tle        domain.TLE
	err        error

	passCalls  []int
	aboveCalls []domain.Observer
	tleCalls   []int
	lastWindow PassWindow
	lastQuery  AboveQuery
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		configured: true,
		passes: domain.PassesResponse{
			Info:   domain.PassesInfo{SatID: 25544, SatName: "SPACE STATION", PassesCount: 1},
			Passes: []domain.PassRecord{{StartUTC: 100, MaxUTC: 200, EndUTC: 300, MaxEl: 55, Mag: 1}},
		},
		above: domain.AboveResponse{
			Info:  domain.AboveInfo{Category: "ANY", SatCount: 2},
			Above: []domain.SatellitePosition{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		},
		tle: domain.TLE{Line1: issLine1, Line2: issLine2},
	}
}

func (f *fakeAPI) Configured() bool { return f.configured }

func (f *fakeAPI) VisualPasses(ctx context.Context, satID int, obs domain.Observer, w PassWindow) (domain.PassesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passCalls = append(f.passCalls, satID)
	f.lastWindow = w
	if f.err != nil {
		return domain.PassesResponse{}, f.err
	}
	return f.passes, nil
}

func (f *fakeAPI) Above(ctx context.Context, obs domain.Observer, q AboveQuery) (domain.AboveResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aboveCalls = append(f.aboveCalls, obs)
	f.lastQuery = q
	if f.err != nil {
		return domain.AboveResponse{}, f.err
	}
	return f.above, nil
}

func (f *fakeAPI) TLE(ctx context.Context, satID int) (domain.TLE, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tleCalls = append(f.tleCalls, satID)
	if f.err != nil {
		return domain.TLE{}, f.err
	}
	return f.tle, nil
}
