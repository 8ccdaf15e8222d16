package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how far a typo may be from a real scenario id.
const maxSuggestionDistance = 4

// SuggestScenario returns the closest scenario id to input, or "" when none
// is near enough.
func (r *Rules) SuggestScenario(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, scenario := range r.Scenarios {
		d := levenshtein.ComputeDistance(input, scenario.ID)
		if d < bestDistance {
			best = scenario.ID
			bestDistance = d
		}
	}
	return best
}

// SuggestScenario uses the embedded rules.
func SuggestScenario(input string) string { return Default().SuggestScenario(input) }
