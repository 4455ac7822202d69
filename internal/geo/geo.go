// Package geo maps geographic coordinates onto the globe's sphere.
//
// The live scene session and the embed generator both place markers through
// Project, so the two renditions of the globe always agree.
package geo

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidCoordinates is returned when a latitude/longitude pair lies
// outside [-90,90]×[-180,180].
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

const degToRad = math.Pi / 180

// Project converts latitude/longitude degrees into a point on a sphere of
// the given radius centered at the origin.
//
// The polar angle is measured from the north pole and the azimuth is offset
// by 180° so that the reference meridian faces a camera on the +Z axis.
func Project(lat, lon, radius float64) mgl64.Vec3 {
	phi := (90 - lat) * degToRad
	theta := (lon + 180) * degToRad
	return mgl64.Vec3{
		-radius * math.Sin(phi) * math.Cos(theta),
		radius * math.Cos(phi),
		radius * math.Sin(phi) * math.Sin(theta),
	}
}

// ValidCoordinates reports whether lat/lon are within geographic bounds.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// CheckCoordinates is ValidCoordinates as an error.
func CheckCoordinates(lat, lon float64) error {
	if !ValidCoordinates(lat, lon) {
		return ErrInvalidCoordinates
	}
	return nil
}
