package service

import (
	"context"

	"github.com/orbitwatch/backend/internal/domain"
)

// Fixed overhead search parameters
const (
	AboveSearchRadius = 70
	AboveCategoryAll  = 0
)

// AboveService proxies the list of satellites currently overhead
type AboveService struct {
	api SatelliteAPI
}

// NewAboveService creates a new above service
func NewAboveService(api SatelliteAPI) *AboveService {
	return &AboveService{api: api}
}

// GetAbove returns the upstream payload for obs. Failures carry no detail.
func (s *AboveService) GetAbove(ctx context.Context, obs domain.Observer) (domain.AboveResponse, error) {
	if !s.api.Configured() {
		return domain.AboveResponse{}, domain.NewConfigurationError(msgMissingKey)
	}

	resp, err := s.api.Above(ctx, obs, AboveQuery{
		ObserverAltM: ObserverAltitudeM,
		RadiusDeg:    AboveSearchRadius,
		CategoryID:   AboveCategoryAll,
	})
	if err != nil {
		return domain.AboveResponse{}, domain.NewUpstreamError(msgAboveFetchFailed, err)
	}
	return resp, nil
}
