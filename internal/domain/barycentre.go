package domain

// The proposed meeting point: the unweighted mean of all geocoded coordinates.
// A Barycentre only exists for two or more geocoded entries; callers model its
// absence with a nil pointer. Address is empty when reverse geocoding failed.
type Barycentre struct {
	Coords  Coordinates
	Address string
}

// HasAddress reports whether reverse geocoding produced a display address.
func (b Barycentre) HasAddress() bool { return b.Address != "" }

// Bounds is the map viewport that covers every geocoded entry and the barycentre.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}
