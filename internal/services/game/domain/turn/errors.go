package turn

import (
	"fmt"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
)

var (
	// ErrGameAlreadyEnded indicates a turn against a dead or won game.
	ErrGameAlreadyEnded = apperrors.New(apperrors.CodeGameAlreadyEnded, "game already ended")
	// ErrActionInvalid indicates an unsupported turn action.
	ErrActionInvalid = apperrors.New(apperrors.CodeTurnActionInvalid, "turn action must be move or loot")
)

// DistanceExceededError rejects a target farther than a day's travel.
type DistanceExceededError struct {
	Distance float64
	Limit    float64
}

func (e *DistanceExceededError) Error() string {
	return fmt.Sprintf("distance %.2f km exceeds daily limit of %.0f km", e.Distance, e.Limit)
}

// Unwrap exposes the coded error so callers can map it like any other
// domain rejection.
func (e *DistanceExceededError) Unwrap() error {
	return apperrors.WithMetadata(apperrors.CodeDistanceExceeded, e.Error(), map[string]string{
		"Distance": fmt.Sprintf("%.2f", e.Distance),
		"Limit":    fmt.Sprintf("%.0f", e.Limit),
	})
}
