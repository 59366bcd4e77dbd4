package ors

import (
	"barycentre-service/internal/domain"
	"barycentre-service/internal/platform/obs"
	"barycentre-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusNoRoute is reported when the matrix cell is null (unroutable pair).
const StatusNoRoute = "NoRoute"

type matrixRequest struct {
	Locations    [][]float64 `json:"locations"`
	Destinations []int       `json:"destinations"`
	Metrics      []string    `json:"metrics"`
	Sources      []int       `json:"sources"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// Route fetches distance and duration for one origin/destination pair with a
// 1x1 request to /v2/matrix/{profile}. The answer is reported in the same
// shape as a routing engine response so the caller applies one set of checks.
func (c *Client) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ ports.RouteResponse, err error) {
	defer obs.Time(ctx, "ors.matrix")(&err)

	ctx, cancel := context.WithTimeout(ctx, c.routeTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", c.baseURL, c.profile)

	payload, err := json.Marshal(matrixRequest{
		Locations:    [][]float64{{origin.Lon, origin.Lat}, {destination.Lon, destination.Lat}},
		Destinations: []int{1},
		Metrics:      []string{"distance", "duration"},
		Sources:      []int{0},
	})
	if err != nil {
		return ports.RouteResponse{}, fmt.Errorf("marshal matrix request: %w", err)
	}

	var mr matrixResponse
	if err := c.doJSON(ctx, http.MethodPost, endpoint, payload, &mr); err != nil {
		return ports.RouteResponse{}, fmt.Errorf("matrix request failed: %w", err)
	}

	if len(mr.Distances) != 1 || len(mr.Durations) != 1 ||
		len(mr.Distances[0]) != 1 || len(mr.Durations[0]) != 1 {
		return ports.RouteResponse{}, fmt.Errorf(
			"expected a 1x1 matrix; got distances=%d durations=%d",
			len(mr.Distances), len(mr.Durations),
		)
	}

	meters, seconds := mr.Distances[0][0], mr.Durations[0][0]
	if meters == nil || seconds == nil {
		return ports.RouteResponse{Code: StatusNoRoute}, nil
	}

	return ports.RouteResponse{
		Code:   ports.StatusOK,
		Routes: []ports.RouteCandidate{{DistanceMeters: *meters, DurationSeconds: *seconds}},
	}, nil
}
