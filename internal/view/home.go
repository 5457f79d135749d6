package view

import (
	"time"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/service"
)

// HomePage is the display model of the landing page sky summary
type HomePage struct {
	Observer   domain.Observer
	Located    bool
	Warning    string
	Error      string
	AboveCount int
	Satellite  domain.SatelliteInfo
	NextPass   *PassCard
	Notices    []string
}

// NewHomePage builds the landing page from an overview. Partial failures in
// the overview become notices; fetchErr replaces the summary with a banner.
func NewHomePage(obs domain.Observer, located string, ov service.Overview, fetchErr error, loc *time.Location) HomePage {
	page := HomePage{
		Observer: obs,
		Located:  located == "",
	}
	if w := domain.LocationWarning(located); w != nil {
		page.Warning = w.Message
	}
	if fetchErr != nil {
		page.Error = "Sky summary unavailable"
		if de := domain.AsError(fetchErr); de != nil {
			page.Error = de.Message
		}
		return page
	}

	page.AboveCount = ov.AboveCount
	page.Satellite = ov.SatelliteInfo
	page.Notices = ov.Errors
	if ov.NextPass != nil {
		card := NewPassCard(1, *ov.NextPass, ov.SatelliteInfo.Name, loc)
		page.NextPass = &card
	}
	return page
}
