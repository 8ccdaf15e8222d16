package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/louisbranch/lastwalk/internal/services/game/domain/catalog"
	"github.com/louisbranch/lastwalk/internal/services/game/domain/game"
	"github.com/louisbranch/lastwalk/internal/services/game/storage"
)

const insertGameSQL = `INSERT INTO games (` + gameColumns + `) VALUES (
	:id, :player_name, :scenario, :attributes_json, :current_day, :alive,
	:current_lat, :current_lng, :start_lat, :start_lng, :inventory_json, :created_at, :updated_at)`

const insertPathSQL = `INSERT INTO path_entries (game_id, day, lat, lng, action, seed, created_at)
	VALUES (:game_id, :day, :lat, :lng, :action, :seed, :created_at)`

// CreateGame persists a new game and its starting path entry.
func (s *Store) CreateGame(ctx context.Context, n game.NewGame) (string, error) {
	gameID, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("generate game id: %w", err)
	}
	state := game.Start(gameID, n, s.now().UTC())
	row, err := toGameRow(state)
	if err != nil {
		return "", err
	}

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, insertGameSQL, row); err != nil {
			return fmt.Errorf("insert game: %w", err)
		}
		if _, err := tx.NamedExecContext(ctx, insertPathSQL, toPathRow(game.StartEntry(state))); err != nil {
			return fmt.Errorf("insert start entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return gameID, nil
}

// GetGame loads a game by id.
func (s *Store) GetGame(ctx context.Context, id string) (game.State, error) {
	if strings.TrimSpace(id) == "" {
		return game.State{}, storage.ErrNotFound
	}
	var row gameRow
	err := s.db.GetContext(ctx, &row, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return game.State{}, storage.ErrNotFound
	}
	if err != nil {
		return game.State{}, fmt.Errorf("get game: %w", err)
	}
	return row.toState()
}

// SaveTurn updates the game row and appends entry in one transaction.
//
// The update only matches a live game on the day before next.CurrentDay, so
// two turns resolved from the same loaded state cannot both commit.
func (s *Store) SaveTurn(ctx context.Context, next game.State, entry game.PathEntry) error {
	if entry.GameID != next.ID {
		return fmt.Errorf("path entry game %q does not match %q", entry.GameID, next.ID)
	}
	now := s.now().UTC()
	next.UpdatedAt = now
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	row, err := toGameRow(next)
	if err != nil {
		return err
	}

	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE games SET
			current_day = ?, alive = ?, current_lat = ?, current_lng = ?,
			inventory_json = ?, updated_at = ?
			WHERE id = ? AND current_day = ? AND alive = 1`,
			row.CurrentDay, row.Alive, row.CurrentLat, row.CurrentLng,
			row.InventoryJSON, row.UpdatedAt,
			row.ID, row.CurrentDay-1,
		)
		if err != nil {
			return fmt.Errorf("update game: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update game rows: %w", err)
		}
		if affected == 0 {
			var exists int
			err := tx.GetContext(ctx, &exists, `SELECT COUNT(*) FROM games WHERE id = ?`, row.ID)
			if err != nil {
				return fmt.Errorf("check game: %w", err)
			}
			if exists == 0 {
				return storage.ErrNotFound
			}
			return storage.ErrConcurrentUpdate
		}
		if _, err := tx.NamedExecContext(ctx, insertPathSQL, toPathRow(entry)); err != nil {
			return fmt.Errorf("insert path entry: %w", err)
		}
		return nil
	})
}

// ListPathEntries returns a game's path ordered by day then insertion.
func (s *Store) ListPathEntries(ctx context.Context, id string) ([]game.PathEntry, error) {
	var rows []pathRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT `+pathColumns+` FROM path_entries WHERE game_id = ? ORDER BY day ASC, id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("list path entries: %w", err)
	}
	return toEntries(rows), nil
}

// ListTerminatedGames returns every dead or won game with its path, ordered
// by game id.
func (s *Store) ListTerminatedGames(ctx context.Context) ([]game.Recap, error) {
	horizon := catalog.HorizonDays()

	var games []gameRow
	err := s.db.SelectContext(ctx, &games,
		`SELECT `+gameColumns+` FROM games WHERE alive = 0 OR current_day >= ? ORDER BY id ASC`, horizon)
	if err != nil {
		return nil, fmt.Errorf("list terminated games: %w", err)
	}
	if len(games) == 0 {
		return []game.Recap{}, nil
	}

	var paths []pathRow
	err = s.db.SelectContext(ctx, &paths, `SELECT p.id, p.game_id, p.day, p.lat, p.lng, p.action, p.seed, p.created_at
		FROM path_entries p
		JOIN games g ON g.id = p.game_id
		WHERE g.alive = 0 OR g.current_day >= ?
		ORDER BY p.game_id ASC, p.day ASC, p.id ASC`, horizon)
	if err != nil {
		return nil, fmt.Errorf("list terminated paths: %w", err)
	}
	byGame := make(map[string][]pathRow, len(games))
	for _, p := range paths {
		byGame[p.GameID] = append(byGame[p.GameID], p)
	}

	recaps := make([]game.Recap, 0, len(games))
	for _, row := range games {
		state, err := row.toState()
		if err != nil {
			return nil, err
		}
		recaps = append(recaps, game.Recap{
			GameID:     state.ID,
			PlayerName: state.PlayerName,
			Status:     state.Status(),
			Paths:      toEntries(byGame[row.ID]),
		})
	}
	return recaps, nil
}

var _ storage.GameStore = (*Store)(nil)
var _ storage.HealthChecker = (*Store)(nil)
