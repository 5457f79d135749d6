package service

import (
	"github.com/orbitwatch/backend/internal/logging"
	"github.com/orbitwatch/backend/internal/observability"
)

// Services bundles the proxies served over HTTP
type Services struct {
	Passes   *PassService
	Above    *AboveService
	TLE      *TLEService
	Overview *OverviewService
}

// NewServices wires every proxy against api
func NewServices(api SatelliteAPI, metrics *observability.Collector, log logging.Logger) *Services {
	passes := NewPassService(api)
	above := NewAboveService(api)
	return &Services{
		Passes:   passes,
		Above:    above,
		TLE:      NewTLEService(api, metrics, log),
		Overview: NewOverviewService(passes, above, log),
	}
}
