package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "bad_status"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
)

// Collector bundles the server's Prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests      *prometheus.CounterVec
	HTTPDurations     *prometheus.HistogramVec
	UpstreamRequests  *prometheus.CounterVec
	UpstreamDurations *prometheus.HistogramVec
	TLESanityFailures prometheus.Counter
	CatalogSatellites prometheus.Gauge
}

// NewCollector registers metrics against reg, defaulting to the global
// registry when nil. Registering twice against the same registry reuses the
// existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	httpRequests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests, labeled by route, method, and status code.",
	}, []string{"route", "method", "status"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	httpDurations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"route", "method"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	upstreamRequests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Calls to the N2YO API, labeled by endpoint and outcome.",
	}, []string{"endpoint", "outcome"}), "upstream_requests_total")
	if err != nil {
		return nil, err
	}

	upstreamDurations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "N2YO API latency in seconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"}), "upstream_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	tleFailures, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tle_sanity_failures_total",
		Help: "Element sets returned by N2YO that failed the format, checksum, or SGP4 check.",
	}), "tle_sanity_failures_total")
	if err != nil {
		return nil, err
	}

	catalogSize, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_satellites",
		Help: "Number of selectable satellites in the static catalog.",
	}), "catalog_satellites")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:          gatherer,
		HTTPRequests:      httpRequests,
		HTTPDurations:     httpDurations,
		UpstreamRequests:  upstreamRequests,
		UpstreamDurations: upstreamDurations,
		TLESanityFailures: tleFailures,
		CatalogSatellites: catalogSize,
	}, nil
}

// ObserveHTTP records one handled request. Safe on a nil collector.
func (c *Collector) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.HTTPDurations.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveUpstream records one N2YO call. Safe on a nil collector.
func (c *Collector) ObserveUpstream(endpoint, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	c.UpstreamDurations.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// IncTLESanityFailure counts an element set that failed the sanity check.
func (c *Collector) IncTLESanityFailure() {
	if c == nil {
		return
	}
	c.TLESanityFailures.Inc()
}

// SetCatalogSize publishes the catalog size.
func (c *Collector) SetCatalogSize(n int) {
	if c == nil {
		return
	}
	c.CatalogSatellites.Set(float64(n))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return g, nil
}
