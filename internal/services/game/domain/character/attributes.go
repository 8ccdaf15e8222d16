package character

import (
	"strconv"

	"github.com/louisbranch/lastwalk/internal/core/dice"
	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
)

const (
	// MinScore is the lowest score 3d6 can produce.
	MinScore = 3
	// MaxScore is the highest score 3d6 can produce.
	MaxScore = 18
)

// Attributes are the six ability scores.
type Attributes struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Field pairs an ability name with its score.
type Field struct {
	Name  string
	Score int
}

// Fields lists the scores in generation order.
func (a Attributes) Fields() []Field {
	return []Field{
		{Name: "strength", Score: a.Strength},
		{Name: "dexterity", Score: a.Dexterity},
		{Name: "constitution", Score: a.Constitution},
		{Name: "intelligence", Score: a.Intelligence},
		{Name: "wisdom", Score: a.Wisdom},
		{Name: "charisma", Score: a.Charisma},
	}
}

// Validate rejects any score outside [MinScore, MaxScore], naming the first
// offending ability.
func (a Attributes) Validate() error {
	for _, field := range a.Fields() {
		if field.Score < MinScore || field.Score > MaxScore {
			return apperrors.WithMetadata(
				apperrors.CodeAttributeOutOfRange,
				field.Name+" must be between 3 and 18, got "+strconv.Itoa(field.Score),
				map[string]string{
					"Attribute": field.Name,
					"Min":       strconv.Itoa(MinScore),
					"Max":       strconv.Itoa(MaxScore),
				},
			)
		}
	}
	return nil
}

// Modifiers returns the modifier for every score, keyed by ability name.
func (a Attributes) Modifiers() map[string]int {
	out := make(map[string]int, 6)
	for _, field := range a.Fields() {
		out[field.Name] = Modifier(field.Score)
	}
	return out
}

// Modifier returns floor((score-10)/2).
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return -((-diff + 1) / 2)
	}
	return diff / 2
}

// attributeDice is the 3d6 every ability score is rolled with.
var attributeDice = []dice.Spec{{Sides: dice.D6, Count: 3}}

// RollAttribute sums three d6 drawn from src.
func RollAttribute(src dice.Source) int {
	result, err := dice.RollDice(src, attributeDice)
	if err != nil {
		// attributeDice is a fixed, valid spec.
		panic(err)
	}
	return result.Total
}

// Generate rolls all six scores in order: strength, dexterity,
// constitution, intelligence, wisdom, charisma.
func Generate(src dice.Source) Attributes {
	return Attributes{
		Strength:     RollAttribute(src),
		Dexterity:    RollAttribute(src),
		Constitution: RollAttribute(src),
		Intelligence: RollAttribute(src),
		Wisdom:       RollAttribute(src),
		Charisma:     RollAttribute(src),
	}
}
