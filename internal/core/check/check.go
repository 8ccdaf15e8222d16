// Package check resolves difficulty checks against a rolled total.
package check

// MeetsDifficulty returns true if total >= difficulty.
func MeetsDifficulty(total, difficulty int) bool {
	return total >= difficulty
}

// Margin calculates the margin of success or failure.
// Positive values indicate success, negative indicate failure.
func Margin(total, difficulty int) int {
	return total - difficulty
}

// Result represents the outcome of a difficulty check.
type Result struct {
	Roll       int
	Modifier   int
	Total      int
	Difficulty int
	Success    bool
	Margin     int
}

// Check applies modifier to roll and compares the total with difficulty.
func Check(roll, modifier, difficulty int) Result {
	total := roll + modifier
	return Result{
		Roll:       roll,
		Modifier:   modifier,
		Total:      total,
		Difficulty: difficulty,
		Success:    MeetsDifficulty(total, difficulty),
		Margin:     Margin(total, difficulty),
	}
}
