package dice

// Common die sizes.
const (
	D6  = 6
	D20 = 20
)

// RollDice rolls specs in slice order against src.
//
// Each Roll in Result.Rolls matches the Spec at the same index, and its
// Total is the sum of its Results. Result.Total sums every die rolled.
//
// Given the same sequence of values from src, RollDice always produces the
// same Result, so seeding src with a recorded seed replays a roll exactly.
//
// Example:
//
//	result, err := RollDice(src, []Spec{
//	    {Sides: 6, Count: 3}, // 3d6
//	})
func RollDice(src Source, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range spec.Count {
			value := RollDie(src, spec.Sides)
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// RollDie rolls a single die with the provided number of sides.
func RollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}

// Chance reports whether a single uniform draw from src falls below p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
