// Package character models a survivor's six ability scores.
//
// Scores are generated by rolling 3d6 per ability, giving the peaked 3..18
// distribution the hazard checks are tuned around. Modifiers follow the
// usual floor((score-10)/2) table, rounding toward negative infinity.
package character
