package game

import (
	"errors"
	"math"
	"testing"
	"time"

	apperrors "github.com/louisbranch/lastwalk/internal/platform/errors"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
)

func validNewGame() NewGame {
	return NewGame{
		PlayerName: "  Ada ",
		Scenario:   "Zombie-Apocalypse",
		Attributes: character.Attributes{Strength: 10, Dexterity: 12, Constitution: 14, Intelligence: 9, Wisdom: 11, Charisma: 8},
		Start:      Position{Lat: 39.7392, Lng: -104.9903},
	}
}

func TestNewGameValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewGame)
		code   apperrors.Code
	}{
		{name: "valid"},
		{name: "empty name", mutate: func(n *NewGame) { n.PlayerName = "   " }, code: apperrors.CodeGamePlayerNameEmpty},
		{name: "unknown scenario", mutate: func(n *NewGame) { n.Scenario = "zombies" }, code: apperrors.CodeGameScenarioUnknown},
		{name: "unavailable scenario", mutate: func(n *NewGame) { n.Scenario = "pandemic" }, code: apperrors.CodeGameScenarioUnavailable},
		{name: "bad attribute", mutate: func(n *NewGame) { n.Attributes.Charisma = 20 }, code: apperrors.CodeAttributeOutOfRange},
		{name: "bad latitude", mutate: func(n *NewGame) { n.Start.Lat = 91 }, code: apperrors.CodePositionOutOfRange},
		{name: "nan longitude", mutate: func(n *NewGame) { n.Start.Lng = math.NaN() }, code: apperrors.CodePositionOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNewGame()
			if tt.mutate != nil {
				tt.mutate(&n)
			}
			err := n.Normalize().Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if got := apperrors.CodeOf(err); got != tt.code {
				t.Fatalf("Validate() code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestUnknownScenarioCarriesSuggestion(t *testing.T) {
	err := ValidateScenario("zombie-apocalyps")
	appErr, ok := apperrors.As(err)
	if !ok {
		t.Fatalf("expected app error, got %v", err)
	}
	if appErr.Metadata["Suggestion"] != "zombie-apocalypse" {
		t.Fatalf("suggestion = %q", appErr.Metadata["Suggestion"])
	}
}

func TestStart(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := validNewGame().Normalize()
	s := Start("game_1", n, now)

	if s.CurrentDay != FirstDay || !s.Alive {
		t.Fatalf("unexpected start state %+v", s)
	}
	if s.PlayerName != "Ada" || s.Scenario != "zombie-apocalypse" {
		t.Fatalf("expected normalized fields, got %q %q", s.PlayerName, s.Scenario)
	}
	if s.CurrentPosition != n.Start || s.StartPosition != n.Start {
		t.Fatal("expected positions at start")
	}
	if s.Inventory == nil || len(s.Inventory) != 0 {
		t.Fatalf("expected empty inventory, got %v", s.Inventory)
	}

	entry := StartEntry(s)
	if entry.Day != 1 || entry.Action != ActionStarted || entry.Position != n.Start || entry.Seed != 0 {
		t.Fatalf("unexpected start entry %+v", entry)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		status   Status
		terminal bool
	}{
		{"active", State{Alive: true, CurrentDay: 5}, StatusActive, false},
		{"last playable day", State{Alive: true, CurrentDay: 29}, StatusActive, false},
		{"won", State{Alive: true, CurrentDay: 30}, StatusWon, true},
		{"dead", State{Alive: false, CurrentDay: 3}, StatusDead, true},
		{"dead on horizon", State{Alive: false, CurrentDay: 30}, StatusDead, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Status(); got != tt.status {
				t.Fatalf("Status() = %q, want %q", got, tt.status)
			}
			if got := tt.state.Terminal(); got != tt.terminal {
				t.Fatalf("Terminal() = %v, want %v", got, tt.terminal)
			}
		})
	}
}

func TestCloneDoesNotShareInventory(t *testing.T) {
	s := State{Inventory: []string{"Water"}}
	c := s.Clone()
	c.Inventory[0] = "Food"
	if s.Inventory[0] != "Water" {
		t.Fatal("clone shares inventory backing array")
	}
}

func TestErrNotFoundMatchesByCode(t *testing.T) {
	err := apperrors.Wrap(apperrors.CodeNotFound, "load game", errors.New("no rows"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatal("expected not found match")
	}
}
