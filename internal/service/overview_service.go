package service

import (
	"context"
	"sync"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/logging"
)

// Overview is the home page sky summary
type Overview struct {
	Observer      domain.Observer      `json:"observer"`
	AboveCount    int                  `json:"aboveCount"`
	NextPass      *domain.PassRecord   `json:"nextPass,omitempty"`
	SatelliteInfo domain.SatelliteInfo `json:"satelliteInfo"`
	SatID         int                  `json:"satId"`
	Errors        []string             `json:"errors,omitempty"`
	Timestamp     time.Time            `json:"timestamp"`
}

// OverviewService aggregates the above and pass proxies
type OverviewService struct {
	passes *PassService
	above  *AboveService
	log    logging.Logger
	now    func() time.Time
}

// NewOverviewService creates a new overview service
func NewOverviewService(passes *PassService, above *AboveService, log logging.Logger) *OverviewService {
	if log == nil {
		log = logging.Noop()
	}
	return &OverviewService{passes: passes, above: above, log: log, now: time.Now}
}

// GetOverview fetches the overhead count and the next ISS pass concurrently.
// A failed half is reported in Errors; a missing API key fails the whole call.
func (s *OverviewService) GetOverview(ctx context.Context, obs domain.Observer) (Overview, error) {
	var (
		above    domain.AboveResponse
		passes   domain.PassesResponse
		aboveErr error
		passErr  error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		above, aboveErr = s.above.GetAbove(ctx, obs)
	}()
	go func() {
		defer wg.Done()
		passes, passErr = s.passes.GetPasses(ctx, PassQuery{Observer: obs})
	}()
	wg.Wait()

	for _, err := range []error{aboveErr, passErr} {
		if domain.KindOf(err) == domain.KindConfiguration {
			return Overview{}, err
		}
	}

	info, _ := domain.LookupSatellite(domain.DefaultSatelliteID)
	out := Overview{
		Observer:      obs,
		SatelliteInfo: info,
		SatID:         domain.DefaultSatelliteID,
		Timestamp:     s.now().UTC(),
	}

	log := logging.FromContext(ctx, s.log)
	if aboveErr != nil {
		log.Warn(ctx, "overview above fetch failed", logging.Err(aboveErr))
		out.Errors = append(out.Errors, msgAboveFetchFailed)
	} else {
		out.AboveCount = len(above.Above)
	}

	if passErr != nil {
		log.Warn(ctx, "overview pass fetch failed", logging.Err(passErr))
		out.Errors = append(out.Errors, msgPassFetchFailed)
	} else {
		out.NextPass = nextPass(passes.Passes, s.now().Unix())
	}

	return out, nil
}

// nextPass returns the first pass that has not ended yet, in upstream order
func nextPass(passes []domain.PassRecord, now int64) *domain.PassRecord {
	for i := range passes {
		if passes[i].EndUTC >= now {
			p := passes[i]
			return &p
		}
	}
	return nil
}
