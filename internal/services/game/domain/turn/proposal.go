package turn

import (
	"strings"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

// Action is what the survivor does at the target.
type Action string

const (
	ActionMove Action = "move"
	ActionLoot Action = "loot"
)

// ParseAction normalizes a client-supplied action. Empty means move.
func ParseAction(value string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ActionMove):
		return ActionMove, true
	case string(ActionLoot):
		return ActionLoot, true
	default:
		return Action(value), false
	}
}

// Proposal is a requested move for the current day.
type Proposal struct {
	Target           game.Position
	LocationCategory string
	Action           Action
}
