package routing

import (
	"barycentre-service/internal/domain"
	"barycentre-service/internal/platform/httpx"
	"barycentre-service/internal/platform/obs"
	"barycentre-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// OSRMRouter implements ports.RouteProvider against an OSRM /route/v1 endpoint.
// It returns the provider's status code and routes untouched; judging them is the caller's job.
type OSRMRouter struct {
	client  *httpx.Client
	baseURL string
	profile string
	timeout time.Duration
}

type OSRMConfig struct {
	BaseURL   string
	Profile   string
	UserAgent string
	Timeout   time.Duration
}

func NewOSRMRouter(cfg OSRMConfig, opts ...httpx.Option) *OSRMRouter {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://router.project-osrm.org"
	}

	profile := cfg.Profile
	if profile == "" {
		profile = "driving"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	baseOpts := []httpx.Option{httpx.WithHTTPClient(&http.Client{Timeout: timeout})}
	if cfg.UserAgent != "" {
		baseOpts = append(baseOpts, httpx.WithHeader("User-Agent", cfg.UserAgent))
	}

	return &OSRMRouter{
		client:  httpx.New(append(baseOpts, opts...)...),
		baseURL: base,
		profile: profile,
		timeout: timeout,
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route queries a single origin->destination route without geometry.
func (o *OSRMRouter) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ ports.RouteResponse, err error) {
	defer obs.Time(ctx, "osrm.route")(&err)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s;%s?overview=false",
		o.baseURL, o.profile, lonLat(origin), lonLat(destination),
	)

	resp, err := o.client.DoWithRetry(ctx, func() (*http.Request, error) {
		return o.client.NewRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return ports.RouteResponse{}, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	var rr routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return ports.RouteResponse{}, fmt.Errorf("decode route response: %w", err)
	}

	out := ports.RouteResponse{
		Code:   rr.Code,
		Routes: make([]ports.RouteCandidate, 0, len(rr.Routes)),
	}
	for _, r := range rr.Routes {
		out.Routes = append(out.Routes, ports.RouteCandidate{
			DistanceMeters:  r.Distance,
			DurationSeconds: r.Duration,
		})
	}

	return out, nil
}

// lonLat formats a coordinate in OSRM's "lon,lat" path order.
func lonLat(c domain.Coordinates) string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lat, 'f', -1, 64)
}
