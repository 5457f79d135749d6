package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/logging"
	"github.com/orbitwatch/backend/internal/observability"
)

// N2YO endpoint names, used for metrics and span attributes
const (
	EndpointVisualPasses = "visualpasses"
	EndpointAbove        = "above"
	EndpointTLE          = "tle"
)

const userAgent = "SatelliteTracker/1.0"

// PassWindow selects which passes the upstream predicts
type PassWindow struct {
	ObserverAltM int // metres above sea level
	Days         int
	MinElevation int // degrees
}

// AboveQuery selects which overhead satellites the upstream lists
type AboveQuery struct {
	ObserverAltM int
	RadiusDeg    int
	CategoryID   int // 0 = all categories
}

// SatelliteAPI is the upstream satellite-tracking API
type SatelliteAPI interface {
	Configured() bool
	VisualPasses(ctx context.Context, satID int, obs domain.Observer, w PassWindow) (domain.PassesResponse, error)
	Above(ctx context.Context, obs domain.Observer, q AboveQuery) (domain.AboveResponse, error)
	TLE(ctx context.Context, satID int) (domain.TLE, error)
}

// StatusError is returned when N2YO answers with a non-2xx status
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API responded with status: %d", e.Code)
}

// ErrUpstreamRejected is returned when N2YO answers 200 with an error body
var ErrUpstreamRejected = errors.New("API rejected the request")

// N2YOClient performs single, non-retried requests against the N2YO REST API
type N2YOClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Collector
	log        logging.Logger
	tracer     trace.Tracer
}

// ClientOption customises an N2YOClient
type ClientOption func(*N2YOClient)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *N2YOClient) { c.httpClient = hc }
}

// WithMetrics records upstream calls on m
func WithMetrics(m *observability.Collector) ClientOption {
	return func(c *N2YOClient) { c.metrics = m }
}

// WithLogger sets the client logger
func WithLogger(l logging.Logger) ClientOption {
	return func(c *N2YOClient) { c.log = l }
}

// NewN2YOClient creates a new N2YO client
func NewN2YOClient(apiKey, baseURL string, timeout time.Duration, opts ...ClientOption) *N2YOClient {
	c := &N2YOClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:    logging.Noop(),
		tracer: otel.Tracer("github.com/orbitwatch/backend/internal/service"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is available
func (c *N2YOClient) Configured() bool {
	return c.apiKey != ""
}

// VisualPasses fetches predicted visual passes for satID over obs
func (c *N2YOClient) VisualPasses(ctx context.Context, satID int, obs domain.Observer, w PassWindow) (domain.PassesResponse, error) {
	path := fmt.Sprintf("/satellite/visualpasses/%d/%s/%s/%d/%d/%d/",
		satID, formatCoord(obs.Lat), formatCoord(obs.Lng), w.ObserverAltM, w.Days, w.MinElevation)

	var payload struct {
		domain.PassesResponse
		Error string `json:"error"`
	}
	if err := c.getJSON(ctx, EndpointVisualPasses, path, satID, &payload); err != nil {
		return domain.PassesResponse{}, err
	}
	if payload.Error != "" {
		return domain.PassesResponse{}, c.rejected(ctx, EndpointVisualPasses, payload.Error)
	}

	resp := payload.PassesResponse
	if resp.Passes == nil {
		resp.Passes = []domain.PassRecord{}
	}
	return resp, nil
}

// Above fetches satellites currently within the search radius of obs
func (c *N2YOClient) Above(ctx context.Context, obs domain.Observer, q AboveQuery) (domain.AboveResponse, error) {
	path := fmt.Sprintf("/satellite/above/%s/%s/%d/%d/%d/",
		formatCoord(obs.Lat), formatCoord(obs.Lng), q.ObserverAltM, q.RadiusDeg, q.CategoryID)

	var payload struct {
		domain.AboveResponse
		Error string `json:"error"`
	}
	if err := c.getJSON(ctx, EndpointAbove, path, 0, &payload); err != nil {
		return domain.AboveResponse{}, err
	}
	if payload.Error != "" {
		return domain.AboveResponse{}, c.rejected(ctx, EndpointAbove, payload.Error)
	}

	resp := payload.AboveResponse
	if resp.Above == nil {
		resp.Above = []domain.SatellitePosition{}
	}
	return resp, nil
}

// TLE fetches the two-line element set for satID. N2YO returns both lines in a
// single "tle" field separated by CRLF; explicit line1/line2 fields win when present.
func (c *N2YOClient) TLE(ctx context.Context, satID int) (domain.TLE, error) {
	path := fmt.Sprintf("/satellite/tle/%d", satID)

	var payload struct {
		TLE   string `json:"tle"`
		Line1 string `json:"line1"`
		Line2 string `json:"line2"`
		Error string `json:"error"`
	}
	if err := c.getJSON(ctx, EndpointTLE, path, satID, &payload); err != nil {
		return domain.TLE{}, err
	}
	if payload.Error != "" {
		return domain.TLE{}, c.rejected(ctx, EndpointTLE, payload.Error)
	}

	if payload.Line1 != "" || payload.Line2 != "" {
		return domain.TLE{Line1: strings.TrimSpace(payload.Line1), Line2: strings.TrimSpace(payload.Line2)}, nil
	}
	return SplitTLE(payload.TLE), nil
}

// SplitTLE splits a combined element set into its first two non-empty lines
func SplitTLE(raw string) domain.TLE {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	var tle domain.TLE
	if len(lines) > 0 {
		tle.Line1 = lines[0]
	}
	if len(lines) > 1 {
		tle.Line2 = lines[1]
	}
	return tle
}

// getJSON performs one GET against endpoint and decodes the body into out.
// The API key travels in the URL, so transport errors are stripped of it.
func (c *N2YOClient) getJSON(ctx context.Context, endpoint, path string, satID int, out any) error {
	ctx, span := c.tracer.Start(ctx, "n2yo."+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("n2yo.endpoint", endpoint))
	if satID != 0 {
		span.SetAttributes(attribute.Int("satellite.id", satID))
	}

	start := time.Now()
	outcome := observability.OutcomeOK
	defer func() {
		c.metrics.ObserveUpstream(endpoint, outcome, time.Since(start))
	}()

	fail := func(kind string, err error) error {
		outcome = kind
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		c.log.Warn(ctx, "n2yo request failed",
			logging.String("endpoint", endpoint),
			logging.String("outcome", kind),
			logging.Err(err),
		)
		return err
	}

	reqURL := c.baseURL + path + "&apiKey=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fail(observability.OutcomeTransport, fmt.Errorf("n2yo: failed to create %s request", endpoint))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(observability.OutcomeTransport, redactURLError(endpoint, err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return fail(observability.OutcomeStatus, &StatusError{Code: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(observability.OutcomeDecode, fmt.Errorf("n2yo: failed to decode %s response: %w", endpoint, err))
	}
	return nil
}

func (c *N2YOClient) rejected(ctx context.Context, endpoint, reason string) error {
	c.log.Warn(ctx, "n2yo rejected request",
		logging.String("endpoint", endpoint),
		logging.String("reason", reason),
	)
	return fmt.Errorf("%w: %s", ErrUpstreamRejected, reason)
}

func redactURLError(endpoint string, err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("n2yo: %s request failed: %w", endpoint, ue.Err)
	}
	return fmt.Errorf("n2yo: %s request failed: %w", endpoint, err)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
