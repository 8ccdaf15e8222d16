package game

import (
	"fmt"
	"math"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
)

// Position is a point in decimal degrees.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate rejects coordinates that are not on the globe.
func (p Position) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return apperrors.WithMetadata(
			apperrors.CodePositionOutOfRange,
			fmt.Sprintf("position %.6f,%.6f is out of range", p.Lat, p.Lng),
			map[string]string{
				"Lat": fmt.Sprintf("%.6f", p.Lat),
				"Lng": fmt.Sprintf("%.6f", p.Lng),
			},
		)
	}
	return nil
}

// String renders the position as "lat,lng".
func (p Position) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}
