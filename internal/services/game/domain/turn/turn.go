package turn

import (
	"github.com/louisbranch/lastwalk/internal/core/dice"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/geo"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/hazard"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/loot"
)

// Status summarizes what a turn did to the game.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusDied    Status = "died"
	StatusWon     Status = "won"
)

// Outcome describes an accepted turn.
type Outcome struct {
	Accepted    bool
	DistanceKm  float64
	Hazard      hazard.Result
	ItemsGained []string
	Day         int
	Status      Status
	Seed        int64
}

// Result bundles everything a caller needs to persist and report a turn.
type Result struct {
	State   game.State
	Entry   game.PathEntry
	Outcome Outcome
}

// Resolve applies proposal to state, drawing randomness only from src.
//
// Preconditions are checked in order: the game exists, it is not terminal,
// the action is known, and the target is within a day's travel. A failed
// precondition returns an error and no draws are taken from src.
func Resolve(state game.State, proposal Proposal, src dice.Source) (Result, error) {
	if !state.Exists() {
		return Result{}, game.ErrNotFound
	}
	if state.Terminal() {
		return Result{}, ErrGameAlreadyEnded
	}
	action, ok := ParseAction(string(proposal.Action))
	if !ok {
		return Result{}, ErrActionInvalid
	}

	distance := geo.DistanceKm(state.CurrentPosition, proposal.Target)
	if limit := catalog.MaxDailyDistanceKm(); distance > limit {
		return Result{}, &DistanceExceededError{Distance: distance, Limit: limit}
	}

	category := proposal.LocationCategory
	if category == "" {
		category = catalog.DefaultLocation()
	}
	encounter := hazard.Resolve(category, state.Attributes, src)

	next := state.Clone()
	next.CurrentDay = state.CurrentDay + 1
	next.CurrentPosition = proposal.Target

	outcome := Outcome{
		Accepted:    true,
		DistanceKm:  distance,
		Hazard:      encounter,
		ItemsGained: []string{},
		Day:         next.CurrentDay,
	}
	entry := game.PathEntry{
		GameID:   state.ID,
		Day:      next.CurrentDay,
		Position: proposal.Target,
	}

	if encounter.Lethal() {
		next.Alive = false
		entry.Action = game.ActionKilled
		outcome.Status = StatusDied
		return Result{State: next, Entry: entry, Outcome: outcome}, nil
	}

	entry.Action = game.ActionMoved
	if action == ActionLoot {
		entry.Action = game.ActionLooted
		if proposal.LocationCategory != "" {
			items := loot.Generate(proposal.LocationCategory, src)
			next.Inventory = append(next.Inventory, items...)
			outcome.ItemsGained = items
		}
	}

	outcome.Status = StatusOngoing
	if next.CurrentDay >= catalog.HorizonDays() {
		outcome.Status = StatusWon
	}
	return Result{State: next, Entry: entry, Outcome: outcome}, nil
}
