package geocode

import (
	"barycentre-service/internal/domain"
	"barycentre-service/internal/platform/httpx"
	"barycentre-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNoResults is returned when the provider answered but found nothing.
var ErrNoResults = errors.New("geocode: no results")

// NominatimGeocoder implements ports.Geocoder and ports.ReverseGeocoder using
// an OpenStreetMap Nominatim instance. Nominatim requires a descriptive User-Agent.
//
// Every call is bounded by the configured timeout, retries included.
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	client  *httpx.Client
	baseURL string
	timeout time.Duration
}

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

func NewNominatimGeocoder(cfg NominatimConfig, opts ...httpx.Option) (*NominatimGeocoder, error) {
	if strings.TrimSpace(cfg.UserAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts = append([]httpx.Option{
		httpx.WithHeader("User-Agent", cfg.UserAgent),
		httpx.WithHTTPClient(&http.Client{Timeout: timeout}),
	}, opts...)

	return &NominatimGeocoder{
		client:  httpx.New(opts...),
		baseURL: base,
		timeout: timeout,
	}, nil
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Geocode resolves a free-text address to the first candidate's coordinates.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.search")(&err)

	if strings.TrimSpace(address) == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	var results []searchResult
	if err := g.getJSON(ctx, "/search", params, &results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, err)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ErrNoResults)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lat: %w", address, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: parse lon: %w", address, err)
	}

	c := domain.Coordinates{Lat: lat, Lon: lon}
	if !c.Valid() {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: coordinates out of range: %v,%v", address, lat, lon)
	}

	return c, nil
}

// ReverseGeocode resolves coordinates to Nominatim's display name.
func (g *NominatimGeocoder) ReverseGeocode(ctx context.Context, at domain.Coordinates) (_ string, err error) {
	defer obs.Time(ctx, "nominatim.reverse")(&err)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	params.Set("format", "jsonv2")

	var result reverseResult
	if err := g.getJSON(ctx, "/reverse", params, &result); err != nil {
		return "", fmt.Errorf("reverse geocode %v,%v: %w", at.Lat, at.Lon, err)
	}

	// Nominatim reports "Unable to geocode" as a 200 with an error field.
	if result.Error != "" || strings.TrimSpace(result.DisplayName) == "" {
		return "", fmt.Errorf("reverse geocode %v,%v: %w", at.Lat, at.Lon, ErrNoResults)
	}

	return result.DisplayName, nil
}

func (g *NominatimGeocoder) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := g.baseURL + path + "?" + params.Encode()

	resp, err := g.client.DoWithRetry(ctx, func() (*http.Request, error) {
		return g.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
