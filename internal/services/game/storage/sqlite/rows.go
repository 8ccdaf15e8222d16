package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/character"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
)

type gameRow struct {
	ID             string  `db:"id"`
	PlayerName     string  `db:"player_name"`
	Scenario       string  `db:"scenario"`
	AttributesJSON string  `db:"attributes_json"`
	CurrentDay     int     `db:"current_day"`
	Alive          bool    `db:"alive"`
	CurrentLat     float64 `db:"current_lat"`
	CurrentLng     float64 `db:"current_lng"`
	StartLat       float64 `db:"start_lat"`
	StartLng       float64 `db:"start_lng"`
	InventoryJSON  string  `db:"inventory_json"`
	CreatedAt      int64   `db:"created_at"`
	UpdatedAt      int64   `db:"updated_at"`
}

type pathRow struct {
	ID        int64   `db:"id"`
	GameID    string  `db:"game_id"`
	Day       int     `db:"day"`
	Lat       float64 `db:"lat"`
	Lng       float64 `db:"lng"`
	Action    string  `db:"action"`
	Seed      int64   `db:"seed"`
	CreatedAt int64   `db:"created_at"`
}

const gameColumns = `id, player_name, scenario, attributes_json, current_day, alive,
	current_lat, current_lng, start_lat, start_lng, inventory_json, created_at, updated_at`

const pathColumns = `id, game_id, day, lat, lng, action, seed, created_at`

func toGameRow(state game.State) (gameRow, error) {
	attrs, err := json.Marshal(state.Attributes)
	if err != nil {
		return gameRow{}, fmt.Errorf("encode attributes: %w", err)
	}
	inventory := state.Inventory
	if inventory == nil {
		inventory = []string{}
	}
	items, err := json.Marshal(inventory)
	if err != nil {
		return gameRow{}, fmt.Errorf("encode inventory: %w", err)
	}
	return gameRow{
		ID:             state.ID,
		PlayerName:     state.PlayerName,
		Scenario:       state.Scenario,
		AttributesJSON: string(attrs),
		CurrentDay:     state.CurrentDay,
		Alive:          state.Alive,
		CurrentLat:     state.CurrentPosition.Lat,
		CurrentLng:     state.CurrentPosition.Lng,
		StartLat:       state.StartPosition.Lat,
		StartLng:       state.StartPosition.Lng,
		InventoryJSON:  string(items),
		CreatedAt:      toMillis(state.CreatedAt),
		UpdatedAt:      toMillis(state.UpdatedAt),
	}, nil
}

func (r gameRow) toState() (game.State, error) {
	var attrs character.Attributes
	if err := json.Unmarshal([]byte(r.AttributesJSON), &attrs); err != nil {
		return game.State{}, fmt.Errorf("decode attributes for %s: %w", r.ID, err)
	}
	inventory := []string{}
	if err := json.Unmarshal([]byte(r.InventoryJSON), &inventory); err != nil {
		return game.State{}, fmt.Errorf("decode inventory for %s: %w", r.ID, err)
	}
	return game.State{
		ID:              r.ID,
		PlayerName:      r.PlayerName,
		Scenario:        r.Scenario,
		Attributes:      attrs,
		CurrentDay:      r.CurrentDay,
		Alive:           r.Alive,
		CurrentPosition: game.Position{Lat: r.CurrentLat, Lng: r.CurrentLng},
		StartPosition:   game.Position{Lat: r.StartLat, Lng: r.StartLng},
		Inventory:       inventory,
		CreatedAt:       fromMillis(r.CreatedAt),
		UpdatedAt:       fromMillis(r.UpdatedAt),
	}, nil
}

func toPathRow(entry game.PathEntry) pathRow {
	return pathRow{
		GameID:    entry.GameID,
		Day:       entry.Day,
		Lat:       entry.Position.Lat,
		Lng:       entry.Position.Lng,
		Action:    entry.Action,
		Seed:      entry.Seed,
		CreatedAt: toMillis(entry.CreatedAt),
	}
}

func (r pathRow) toEntry() game.PathEntry {
	return game.PathEntry{
		ID:        r.ID,
		GameID:    r.GameID,
		Day:       r.Day,
		Position:  game.Position{Lat: r.Lat, Lng: r.Lng},
		Action:    r.Action,
		Seed:      r.Seed,
		CreatedAt: fromMillis(r.CreatedAt),
	}
}

func toEntries(rows []pathRow) []game.PathEntry {
	entries := make([]game.PathEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntry())
	}
	return entries
}
