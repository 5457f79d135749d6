package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/logging"
	"github.com/orbitwatch/backend/internal/observability"
)

const (
	msgTLEMissingKey   = "API key missing"
	msgTLEInvalidSatID = "Invalid satellite ID"
	msgTLEFetchFailed  = "Failed to fetch TLE data"
)

var errIncompleteTLE = errors.New("upstream returned fewer than two element lines")

// TLEService proxies two-line element sets for catalogued satellites
type TLEService struct {
	api     SatelliteAPI
	metrics *observability.Collector
	log     logging.Logger
}

// NewTLEService creates a new TLE service. metrics and log may be nil.
func NewTLEService(api SatelliteAPI, metrics *observability.Collector, log logging.Logger) *TLEService {
	if log == nil {
		log = logging.Noop()
	}
	return &TLEService{api: api, metrics: metrics, log: log}
}

// GetTLE returns the element lines for rawSatID, defaulting to the ISS when
// empty. Unknown ids are rejected without contacting the upstream.
func (s *TLEService) GetTLE(ctx context.Context, rawSatID string) (domain.TLE, error) {
	if !s.api.Configured() {
		return domain.TLE{}, domain.NewConfigurationError(msgTLEMissingKey)
	}

	if strings.TrimSpace(rawSatID) == "" {
		rawSatID = strconv.Itoa(domain.DefaultSatelliteID)
	}
	satID, ok := domain.ParseCatalogID(rawSatID)
	if !ok {
		return domain.TLE{}, domain.NewValidationError(msgTLEInvalidSatID, "")
	}

	tle, err := s.api.TLE(ctx, satID)
	if err != nil {
		return domain.TLE{}, domain.NewUpstreamError(msgTLEFetchFailed, err)
	}
	if tle.Line1 == "" || tle.Line2 == "" {
		return domain.TLE{}, domain.NewUpstreamError(msgTLEFetchFailed, errIncompleteTLE)
	}

	if err := CheckTLE(tle, satID); err != nil {
		s.metrics.IncTLESanityFailure()
		logging.FromContext(ctx, s.log).Warn(ctx, "element set failed sanity check",
			logging.Int("sat_id", satID),
			logging.Err(err),
		)
	}
	return domain.TLE{Line1: tle.Line1, Line2: tle.Line2}, nil
}
