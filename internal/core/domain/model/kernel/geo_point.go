package kernel

import "waterdrop/internal/pkg/errs"

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// GeoPoint is a validated latitude/longitude pair reported by delivery
// partners while they are on the road.
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint creates a GeoPoint, rejecting coordinates outside the valid
// latitude and longitude ranges.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < minLatitude || latitude > maxLatitude {
		return GeoPoint{}, newCoordinateError("latitude", latitude, minLatitude, maxLatitude)
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return GeoPoint{}, newCoordinateError("longitude", longitude, minLongitude, maxLongitude)
	}
	return GeoPoint{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Validate checks that the point's coordinates are within range.
func (p GeoPoint) Validate() error {
	if p.latitude < minLatitude || p.latitude > maxLatitude {
		return newCoordinateError("latitude", p.latitude, minLatitude, maxLatitude)
	}
	if p.longitude < minLongitude || p.longitude > maxLongitude {
		return newCoordinateError("longitude", p.longitude, minLongitude, maxLongitude)
	}
	return nil
}

// IsEqual compares two points for exact equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

func newCoordinateError(name string, value, minValue, maxValue float64) error {
	return errs.NewValueIsOutOfRangeError(name, value, minValue, maxValue)
}
