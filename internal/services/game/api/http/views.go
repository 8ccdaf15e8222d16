package httpapi

import (
	"time"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/hazard"
)

type gameView struct {
	ID              string               `json:"id"`
	PlayerName      string               `json:"playerName"`
	Scenario        string               `json:"scenario"`
	Stats           character.Attributes `json:"stats"`
	Modifiers       map[string]int       `json:"modifiers"`
	CurrentDay      int                  `json:"currentDay"`
	IsAlive         bool                 `json:"isAlive"`
	Status          game.Status          `json:"status"`
	CurrentPosition game.Position        `json:"currentPosition"`
	StartPosition   game.Position        `json:"startPosition"`
	Inventory       []string             `json:"inventory"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func newGameView(s game.State) gameView {
	inventory := s.Inventory
	if inventory == nil {
		inventory = []string{}
	}
	return gameView{
		ID:              s.ID,
		PlayerName:      s.PlayerName,
		Scenario:        s.Scenario,
		Stats:           s.Attributes,
		Modifiers:       s.Attributes.Modifiers(),
		CurrentDay:      s.CurrentDay,
		IsAlive:         s.Alive,
		Status:          s.Status(),
		CurrentPosition: s.CurrentPosition,
		StartPosition:   s.StartPosition,
		Inventory:       inventory,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// moveResponse reports an accepted turn. Died turns carry FinalDay, the rest
// NewDay.
type moveResponse struct {
	Success         bool          `json:"success"`
	Died            bool          `json:"died"`
	Won             bool          `json:"won"`
	NewDay          int           `json:"newDay,omitempty"`
	FinalDay        int           `json:"finalDay,omitempty"`
	EncounterResult hazard.Result `json:"encounterResult"`
	NewSupplies     []string      `json:"newSupplies"`
	Distance        float64       `json:"distance"`
	Position        game.Position `json:"position"`
	Seed            int64         `json:"seed"`
}

type rollResponse struct {
	Stats     character.Attributes `json:"stats"`
	Modifiers map[string]int       `json:"modifiers"`
	StartLat  float64              `json:"startLat"`
	StartLng  float64              `json:"startLng"`
	Seed      int64                `json:"seed"`
}

func nonNilEntries(entries []game.PathEntry) []game.PathEntry {
	if entries == nil {
		return []game.PathEntry{}
	}
	return entries
}

func nonNilRecaps(recaps []game.Recap) []game.Recap {
	if recaps == nil {
		return []game.Recap{}
	}
	for i := range recaps {
		recaps[i].Paths = nonNilEntries(recaps[i].Paths)
	}
	return recaps
}
