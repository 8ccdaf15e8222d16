// Package geo measures distances between positions on the globe.
package geo

import (
	"math"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between a and b using the
// haversine formula on a sphere of radius EarthRadiusKm.
func DistanceKm(a, b game.Position) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RandomWithin returns a uniformly distributed position inside the box.
// It draws latitude first, then longitude.
func RandomWithin(north, south, east, west float64, float64Source func() float64) game.Position {
	lat := south + float64Source()*(north-south)
	lng := west + float64Source()*(east-west)
	return game.Position{Lat: lat, Lng: lng}
}
