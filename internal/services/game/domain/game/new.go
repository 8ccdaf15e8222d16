package game

import (
	"strings"
	"time"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
)

// MaxPlayerNameLength bounds stored player names.
const MaxPlayerNameLength = 64

var (
	// ErrPlayerNameEmpty indicates a missing player name.
	ErrPlayerNameEmpty = apperrors.New(apperrors.CodeGamePlayerNameEmpty, "player name is required")
	// ErrNotFound indicates no game exists for an id.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "game not found")
)

// NewGame carries the fields a player chooses when starting a game.
type NewGame struct {
	PlayerName string
	Scenario   string
	Attributes character.Attributes
	Start      Position
}

// Normalize trims free-form text.
func (n NewGame) Normalize() NewGame {
	n.PlayerName = strings.TrimSpace(n.PlayerName)
	n.Scenario = strings.ToLower(strings.TrimSpace(n.Scenario))
	return n
}

// Validate checks a normalized NewGame.
func (n NewGame) Validate() error {
	if n.PlayerName == "" {
		return ErrPlayerNameEmpty
	}
	if len([]rune(n.PlayerName)) > MaxPlayerNameLength {
		return apperrors.New(apperrors.CodeValidationFailed, "player name is too long")
	}
	if err := ValidateScenario(n.Scenario); err != nil {
		return err
	}
	if err := n.Attributes.Validate(); err != nil {
		return err
	}
	return n.Start.Validate()
}

// ValidateScenario accepts only known, available scenarios.
func ValidateScenario(id string) error {
	scenario, ok := catalog.Default().Scenario(id)
	if !ok {
		return apperrors.WithMetadata(
			apperrors.CodeGameScenarioUnknown,
			"unknown scenario "+id,
			map[string]string{
				"Scenario":   id,
				"Suggestion": catalog.SuggestScenario(id),
			},
		)
	}
	if !scenario.Available {
		return apperrors.WithMetadata(
			apperrors.CodeGameScenarioUnavailable,
			"scenario "+id+" is not available yet",
			map[string]string{"Scenario": scenario.Name},
		)
	}
	return nil
}

// Start builds the initial state for a validated NewGame.
func Start(id string, n NewGame, now time.Time) State {
	return State{
		ID:              id,
		PlayerName:      n.PlayerName,
		Scenario:        n.Scenario,
		Attributes:      n.Attributes,
		CurrentDay:      FirstDay,
		Alive:           true,
		CurrentPosition: n.Start,
		StartPosition:   n.Start,
		Inventory:       []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// StartEntry is the path entry recorded when a game is created.
func StartEntry(s State) PathEntry {
	return PathEntry{
		GameID:    s.ID,
		Day:       s.CurrentDay,
		Position:  s.StartPosition,
		Action:    ActionStarted,
		CreatedAt: s.CreatedAt,
	}
}
