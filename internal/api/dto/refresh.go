package dto

import "barycentre-service/internal/domain"

type GeocodedResponse struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type FailedResponse struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Warning string `json:"warning"`
}

type BarycentreResponse struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address,omitempty"`
}

// MetricResponse is one row of the distance table. DistanceKm and DurationMin
// are null when no route could be fetched.
type MetricResponse struct {
	Index       int      `json:"index"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	DistanceKm  *float64 `json:"distance_km"`
	DurationMin *int     `json:"duration_min"`
	StraightKm  float64  `json:"straight_km"`
}

type BoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

type MapResponse struct {
	CenterLat float64         `json:"center_lat"`
	CenterLon float64         `json:"center_lon"`
	Zoom      int             `json:"zoom"`
	Bounds    *BoundsResponse `json:"bounds,omitempty"`
}

// MapDefaults is the initial view before any fit to bounds.
type MapDefaults struct {
	Lat  float64
	Lon  float64
	Zoom int
}

type RefreshResponse struct {
	Friends    []FriendResponse    `json:"friends"`
	Geocoded   []GeocodedResponse  `json:"geocoded"`
	Failed     []FailedResponse    `json:"failed"`
	Barycentre *BarycentreResponse `json:"barycentre"`
	Metrics    []MetricResponse    `json:"metrics"`
	Map        MapResponse         `json:"map"`
	Token      string              `json:"token"`
	Share      string              `json:"share"`
}

func NewRefreshResponse(entries []domain.FriendEntry, r domain.Refresh, m MapDefaults) RefreshResponse {
	res := RefreshResponse{
		Friends:  NewFriendsResponse(entries),
		Geocoded: make([]GeocodedResponse, 0, len(r.Geocoded)),
		Failed:   make([]FailedResponse, 0, len(r.Failed)),
		Metrics:  make([]MetricResponse, 0, len(r.Metrics)),
		Map:      MapResponse{CenterLat: m.Lat, CenterLon: m.Lon, Zoom: m.Zoom},
	}

	for _, g := range r.Geocoded {
		res.Geocoded = append(res.Geocoded, GeocodedResponse{
			Index:   g.Index,
			Name:    g.Name,
			Address: g.Address,
			Lat:     g.Coords.Lat,
			Lon:     g.Coords.Lon,
		})
	}

	for _, f := range r.Failed {
		res.Failed = append(res.Failed, FailedResponse{
			Index:   f.Index,
			Name:    f.Name,
			Address: f.Address,
			Warning: f.Warning(),
		})
	}

	if r.Barycentre != nil {
		res.Barycentre = &BarycentreResponse{
			Lat:     r.Barycentre.Coords.Lat,
			Lon:     r.Barycentre.Coords.Lon,
			Address: r.Barycentre.Address,
		}
	}

	for _, mt := range r.Metrics {
		row := MetricResponse{
			Index:      mt.Entry.Index,
			Name:       mt.Entry.Name,
			Address:    mt.Entry.Address,
			StraightKm: mt.StraightKm,
		}
		if mt.Leg != nil {
			km, min := mt.Leg.DistanceKm, mt.Leg.DurationMin
			row.DistanceKm = &km
			row.DurationMin = &min
		}
		res.Metrics = append(res.Metrics, row)
	}

	if r.Bounds != nil {
		res.Map.Bounds = &BoundsResponse{
			MinLat: r.Bounds.MinLat,
			MinLon: r.Bounds.MinLon,
			MaxLat: r.Bounds.MaxLat,
			MaxLon: r.Bounds.MaxLon,
		}
	}

	return res
}
