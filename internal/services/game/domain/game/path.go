package game

import "time"

// Path entry labels.
const (
	ActionStarted = "Game started"
	ActionMoved   = "Moved"
	ActionLooted  = "Looted"
	ActionKilled  = "Killed by zombies"
)

// PathEntry is one immutable point on a survivor's path.
type PathEntry struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"gameId"`
	Day       int       `json:"day"`
	Position  Position  `json:"position"`
	Action    string    `json:"action"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Recap is a finished game's path, used by the recap views.
type Recap struct {
	GameID     string      `json:"gameId"`
	PlayerName string      `json:"playerName"`
	Status     Status      `json:"status"`
	Paths      []PathEntry `json:"paths"`
}
