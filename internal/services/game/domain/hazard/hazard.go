// Package hazard resolves whether a survivor runs into trouble at a location
// and whether they live through it.
package hazard

import (
	"github.com/louisbranch/lastwalk/internal/core/check"
	"github.com/louisbranch/lastwalk/internal/core/dice"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
)

// Result is the outcome of one hazard check.
type Result struct {
	Category        string       `json:"category"`
	Tier            catalog.Tier `json:"tier"`
	Encountered     bool         `json:"encountered"`
	Survived        bool         `json:"survived"`
	// Roll is the natural d20; Total adds Modifier.
	Roll            int          `json:"roll"`
	Modifier        int          `json:"modifier"`
	Total           int          `json:"total"`
	DifficultyClass int          `json:"dc"`
}

// Lethal reports whether the survivor died.
func (r Result) Lethal() bool {
	return r.Encountered && !r.Survived
}

// SaveModifier averages the dexterity and constitution modifiers, rounding
// toward negative infinity.
func SaveModifier(attrs character.Attributes) int {
	sum := character.Modifier(attrs.Dexterity) + character.Modifier(attrs.Constitution)
	if sum < 0 {
		return -((-sum + 1) / 2)
	}
	return sum / 2
}

// Resolve checks category against attrs. The d20 save is always drawn first,
// then the encounter draw, so a seeded src replays identically whether or
// not an encounter happens.
func Resolve(category string, attrs character.Attributes, src dice.Source) Result {
	tier := catalog.TierOf(category)
	rule := catalog.RuleFor(tier)

	save := check.Check(dice.RollDie(src, dice.D20), SaveModifier(attrs), rule.DifficultyClass)
	encountered := dice.Chance(src, rule.EncounterChance)

	return Result{
		Category:        category,
		Tier:            tier,
		Encountered:     encountered,
		Survived:        !encountered || save.Success,
		Roll:            save.Roll,
		Modifier:        save.Modifier,
		Total:           save.Total,
		DifficultyClass: save.Difficulty,
	}
}
