package ors

import (
	"barycentre-service/internal/domain"
	"barycentre-service/internal/platform/obs"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type featureCollection struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Geocode resolves address with /geocode/search, taking the first feature.
func (c *Client) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.geocode")(&err)

	if strings.TrimSpace(address) == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: address must be non-empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.geocodeTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("text", address)
	params.Set("size", "1")

	var fc featureCollection
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/geocode/search?"+params.Encode(), nil, &fc); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, err)
	}

	if len(fc.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ErrNoResults)
	}

	// GeoJSON order is [lon, lat].
	coords := fc.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: invalid coordinate format", address)
	}

	return domain.Coordinates{Lat: coords[1], Lon: coords[0]}, nil
}

// ReverseGeocode returns the label of the nearest feature from /geocode/reverse.
func (c *Client) ReverseGeocode(ctx context.Context, at domain.Coordinates) (_ string, err error) {
	defer obs.Time(ctx, "ors.reverse")(&err)

	ctx, cancel := context.WithTimeout(ctx, c.geocodeTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("point.lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	params.Set("point.lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	params.Set("size", "1")

	var fc featureCollection
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/geocode/reverse?"+params.Encode(), nil, &fc); err != nil {
		return "", fmt.Errorf("reverse geocode %v,%v: %w", at.Lat, at.Lon, err)
	}

	if len(fc.Features) == 0 || strings.TrimSpace(fc.Features[0].Properties.Label) == "" {
		return "", fmt.Errorf("reverse geocode %v,%v: %w", at.Lat, at.Lon, ErrNoResults)
	}

	return fc.Features[0].Properties.Label, nil
}
