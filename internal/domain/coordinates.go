package domain

import "github.com/paulmach/orb"

// Immutable geographic coordinates (latitude, longitude) in WGS 84 degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the pair lies within lat [-90,90] and lon [-180,180].
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Point returns the coordinates as an orb point (x=lon, y=lat).
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// CoordinatesFromPoint is the inverse of Coordinates.Point.
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Lat: p.Lat(), Lon: p.Lon()}
}
