// Package dice provides polyhedral rolls over an injectable random source.
package dice

import "errors"

var (
	// ErrMissingDice is returned when a roll names no dice.
	ErrMissingDice = errors.New("at least one die spec is required")
	// ErrInvalidDiceSpec is returned when a spec has no sides or no count.
	ErrInvalidDiceSpec = errors.New("dice spec requires positive sides and count")
)

// Source is the randomness capability every roll draws from.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// Spec describes Count dice of Sides sides each.
type Spec struct {
	Sides int
	Count int
}

// Roll holds the individual results of one Spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result is the outcome of rolling a set of specs.
type Result struct {
	Rolls []Roll
	Total int
}
