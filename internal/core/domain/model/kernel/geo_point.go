package kernel

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a WGS84 coordinate pair used to pin ports on a map.
// The zero value is invalid; build it with NewGeoPoint.
//
//	jebelAli, err := kernel.NewGeoPoint(25.0112, 55.0612)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates both coordinates and reports every out-of-range value at once.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String renders the point with seven decimals, the precision ports are stored with.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.7f,%.7f)", p.latitude, p.longitude)
}

// IsEqual fails when either side was not built by NewGeoPoint.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

func (p *GeoPoint) setLatitude(v float64) error {
	if v < LatitudeMin || v > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", v, LatitudeMin, LatitudeMax)
	}

	p.latitude = v
	return nil
}

func (p *GeoPoint) setLongitude(v float64) error {
	if v < LongitudeMin || v > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", v, LongitudeMin, LongitudeMax)
	}

	p.longitude = v
	return nil
}
