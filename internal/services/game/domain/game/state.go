package game

import (
	"slices"
	"time"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
)

// FirstDay is the day every game starts on.
const FirstDay = 1

// Status is the lifecycle label derived from a State.
type Status string

const (
	StatusActive Status = "active"
	StatusDead   Status = "dead"
	StatusWon    Status = "won"
)

// State is the full game aggregate.
type State struct {
	ID              string
	PlayerName      string
	Scenario        string
	Attributes      character.Attributes
	CurrentDay      int
	Alive           bool
	CurrentPosition Position
	StartPosition   Position
	Inventory       []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Exists reports whether the state was loaded from a real game.
func (s State) Exists() bool {
	return s.ID != ""
}

// Terminal reports whether no further turn may be taken.
func (s State) Terminal() bool {
	return !s.Alive || s.CurrentDay >= catalog.HorizonDays()
}

// Status derives the lifecycle label. Death wins over the horizon.
func (s State) Status() Status {
	switch {
	case !s.Alive:
		return StatusDead
	case s.CurrentDay >= catalog.HorizonDays():
		return StatusWon
	default:
		return StatusActive
	}
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	s.Inventory = slices.Clone(s.Inventory)
	return s
}
