package ors

import (
	"barycentre-service/internal/platform/httpx"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoResults is returned when ORS geocoding finds no feature.
var ErrNoResults = errors.New("ors: no results")

// Client implements ports.Geocoder, ports.ReverseGeocoder and ports.RouteProvider
// against OpenRouteService (Pelias geocoding plus the matrix API).
//
// The client is safe for concurrent use.
type Client struct {
	http           *httpx.Client
	baseURL        string
	profile        string
	geocodeTimeout time.Duration
	routeTimeout   time.Duration
}

// Config bounds geocoding and matrix calls separately. A non-positive
// timeout defaults to 10s.
type Config struct {
	APIKey         string
	BaseURL        string
	Profile        string
	GeocodeTimeout time.Duration
	RouteTimeout   time.Duration
}

func NewClient(cfg Config, opts ...httpx.Option) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.openrouteservice.org"
	}

	profile := cfg.Profile
	if profile == "" {
		profile = "driving-car"
	}

	geocodeTimeout := orDefault(cfg.GeocodeTimeout)
	routeTimeout := orDefault(cfg.RouteTimeout)

	// Per-call contexts enforce each timeout; the transport limit only caps the longer one.
	opts = append([]httpx.Option{
		httpx.WithHeader("Authorization", cfg.APIKey),
		httpx.WithHTTPClient(&http.Client{Timeout: max(geocodeTimeout, routeTimeout)}),
	}, opts...)

	return &Client{
		http:           httpx.New(opts...),
		baseURL:        base,
		profile:        profile,
		geocodeTimeout: geocodeTimeout,
		routeTimeout:   routeTimeout,
	}, nil
}

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}

func (c *Client) doJSON(
	ctx context.Context,
	method string,
	endpoint string,
	payload []byte,
	out any,
) error {
	resp, err := c.http.DoWithRetry(ctx, func() (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		return c.http.NewRequest(ctx, method, endpoint, body)
	})
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
