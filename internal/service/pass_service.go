package service

import (
	"context"

	"github.com/orbitwatch/backend/internal/domain"
)

// Fixed pass prediction window
const (
	ObserverAltitudeM = 0
	PassWindowDays    = 10
	PassMinElevation  = 10
)

const (
	msgMissingKey       = "API key not configured"
	msgPassFetchFailed  = "Failed to fetch pass data"
	msgAboveFetchFailed = "Failed to fetch satellite data"
)

// PassQuery is a pass proxy request. SatID is the raw query value.
type PassQuery struct {
	Observer domain.Observer
	SatID    string
}

// PassService proxies visual pass predictions
type PassService struct {
	api SatelliteAPI
}

// NewPassService creates a new pass service
func NewPassService(api SatelliteAPI) *PassService {
	return &PassService{api: api}
}

// GetPasses resolves the satellite (falling back to the ISS), fetches its
// passes, and attaches catalog metadata.
func (s *PassService) GetPasses(ctx context.Context, q PassQuery) (domain.PassesResponse, error) {
	if !s.api.Configured() {
		return domain.PassesResponse{}, domain.NewConfigurationError(msgMissingKey)
	}

	satID := domain.ResolveSatelliteID(q.SatID)
	resp, err := s.api.VisualPasses(ctx, satID, q.Observer, PassWindow{
		ObserverAltM: ObserverAltitudeM,
		Days:         PassWindowDays,
		MinElevation: PassMinElevation,
	})
	if err != nil {
		return domain.PassesResponse{}, domain.NewUpstreamErrorWithDetail(msgPassFetchFailed, err)
	}

	info, _ := domain.LookupSatellite(satID)
	resp.SatelliteInfo = info
	resp.SelectedSatID = satID
	return resp, nil
}
