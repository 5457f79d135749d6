// Package client is a typed Go client for the satellite tracker HTTP API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
	"github.com/orbitwatch/backend/internal/service"
)

const maxErrorBody = 4 << 10

// APIError is a non-2xx answer from the server
type APIError struct {
	StatusCode int
	Message    string // "error" field of the body, when present
	Details    string // "details" field of the body, when present
	Body       string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.TrimSpace(e.Body)
	}
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return fmt.Sprintf("client: status %d: %s", e.StatusCode, msg)
}

// Catalog is the /api/catalog payload
type Catalog struct {
	Satellites   []domain.CatalogEntry `json:"satellites"`
	DefaultSatID int                   `json:"defaultSatId"`
}

// Health is the /health payload
type Health struct {
	Status             string `json:"status"`
	Service            string `json:"service"`
	Version            string `json:"version"`
	UpstreamConfigured bool   `json:"upstreamConfigured"`
}

// Client calls a running tracker server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new client for baseURL, e.g. "http://localhost:8080"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health checks server liveness
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	err := c.get(ctx, "/health", nil, &out)
	return out, err
}

// Catalog lists the selectable satellites
func (c *Client) Catalog(ctx context.Context) (Catalog, error) {
	var out Catalog
	err := c.get(ctx, "/api/catalog", nil, &out)
	return out, err
}

// Passes fetches visual passes of satID over obs. A zero satID lets the server
// pick its default.
func (c *Client) Passes(ctx context.Context, obs domain.Observer, satID int) (domain.PassesResponse, error) {
	q := observerQuery(obs)
	if satID != 0 {
		q.Set("satId", strconv.Itoa(satID))
	}
	var out domain.PassesResponse
	err := c.get(ctx, "/api/passes", q, &out)
	return out, err
}

// Above fetches the satellites currently over obs
func (c *Client) Above(ctx context.Context, obs domain.Observer) (domain.AboveResponse, error) {
	var out domain.AboveResponse
	err := c.get(ctx, "/api/satellites", observerQuery(obs), &out)
	return out, err
}

// TLE fetches the element set of satID
func (c *Client) TLE(ctx context.Context, satID int) (domain.TLE, error) {
	q := url.Values{}
	if satID != 0 {
		q.Set("satId", strconv.Itoa(satID))
	}
	var out domain.TLE
	err := c.get(ctx, "/api/tle", q, &out)
	return out, err
}

// Overview fetches the sky summary for obs
func (c *Client) Overview(ctx context.Context, obs domain.Observer) (service.Overview, error) {
	var out service.Overview
	err := c.get(ctx, "/api/overview", observerQuery(obs), &out)
	return out, err
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("client: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: GET %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: failed to decode %s response: %w", path, err)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(raw)}

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Error
		apiErr.Details = body.Details
	}
	return apiErr
}

func observerQuery(obs domain.Observer) url.Values {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(obs.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(obs.Lng, 'f', -1, 64))
	return q
}
